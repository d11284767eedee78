package domain

// Application is a bank-account application looked up by the account-status
// action. Attributes beyond the phone number vary per record and are kept as
// a flat string map for the agent response.
type Application struct {
	PhoneNumber string
	Attributes  map[string]string
}
