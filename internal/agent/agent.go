// Package agent declares the Bedrock agent action-group invocation envelope.
// The aws-lambda-go events package has no type for action-group events, so
// the wire shape is declared here in the same spirit.
package agent

import (
	"encoding/json"
	"errors"
	"fmt"
)

const contentTypeJSON = "application/json"

// Property is one {name, value} pair from the action request body.
type Property struct {
	Name  string `json:"name"`
	Type  string `json:"type,omitempty"`
	Value string `json:"value"`
}

// Parameter is one path/query parameter of the action invocation.
type Parameter struct {
	Name  string `json:"name"`
	Type  string `json:"type,omitempty"`
	Value string `json:"value"`
}

// Properties is the loosely typed {name, value} list carried by the body.
type Properties []Property

// Value returns the value of the named property, or "" when absent.
func (ps Properties) Value(name string) string {
	for _, p := range ps {
		if p.Name == name {
			return p.Value
		}
	}
	return ""
}

// Content wraps the property list for one media type.
type Content struct {
	Properties Properties `json:"properties"`
}

// RequestBody is the action request body keyed by media type.
type RequestBody struct {
	Content map[string]Content `json:"content"`
}

// Event is an action-group invocation as delivered by the agent runtime.
// ActionGroup, APIPath, HTTPMethod and the session attribute maps are
// pass-through fields that must be echoed back unchanged in the response.
type Event struct {
	MessageVersion          string            `json:"messageVersion"`
	ActionGroup             string            `json:"actionGroup"`
	APIPath                 string            `json:"apiPath"`
	HTTPMethod              string            `json:"httpMethod"`
	Parameters              []Parameter       `json:"parameters,omitempty"`
	RequestBody             RequestBody       `json:"requestBody,omitempty"`
	SessionAttributes       map[string]string `json:"sessionAttributes,omitempty"`
	PromptSessionAttributes map[string]string `json:"promptSessionAttributes,omitempty"`
}

// ResponseBody carries the serialized result keyed by media type.
type ResponseBody struct {
	Body string `json:"body"`
}

// ActionResponse is the inner response with the echoed routing fields.
type ActionResponse struct {
	ActionGroup    string                  `json:"actionGroup"`
	APIPath        string                  `json:"apiPath"`
	HTTPMethod     string                  `json:"httpMethod"`
	HTTPStatusCode int                     `json:"httpStatusCode"`
	ResponseBody   map[string]ResponseBody `json:"responseBody"`
}

// Response is the envelope returned to the agent runtime.
type Response struct {
	MessageVersion          string            `json:"messageVersion"`
	Response                ActionResponse    `json:"response"`
	SessionAttributes       map[string]string `json:"sessionAttributes"`
	PromptSessionAttributes map[string]string `json:"promptSessionAttributes"`
}

// ErrNoProperties reports a request body without a recognized property list.
var ErrNoProperties = errors.New("agent: request body has no property list")

// Properties returns the {name, value} list from the JSON content of the
// request body, or ErrNoProperties when the body is structurally malformed.
func (e Event) Properties() (Properties, error) {
	content, ok := e.RequestBody.Content[contentTypeJSON]
	if !ok || content.Properties == nil {
		return nil, ErrNoProperties
	}
	return content.Properties, nil
}

// Parameter returns the value of the named invocation parameter.
func (e Event) Parameter(name string) (string, bool) {
	for _, p := range e.Parameters {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// Respond builds the response envelope around payload, echoing the event's
// pass-through fields. payload is serialized as the JSON body.
func (e Event) Respond(statusCode int, payload any) (Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Response{}, fmt.Errorf("agent: marshal response body: %w", err)
	}
	return Response{
		MessageVersion: "1.0",
		Response: ActionResponse{
			ActionGroup:    e.ActionGroup,
			APIPath:        e.APIPath,
			HTTPMethod:     e.HTTPMethod,
			HTTPStatusCode: statusCode,
			ResponseBody: map[string]ResponseBody{
				contentTypeJSON: {Body: string(body)},
			},
		},
		SessionAttributes:       e.SessionAttributes,
		PromptSessionAttributes: e.PromptSessionAttributes,
	}, nil
}
