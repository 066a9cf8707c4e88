package models

// DeleteFailure reports one id a bulk delete could not remove.
type DeleteFailure struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}
