package responses

import "github.com/goccy/go-json"

// User is the account record returned by the auth service.
type User struct {
	UserID        string   `json:"userid"`
	Username      string   `json:"username,omitempty"`
	Emails        []string `json:"emails,omitempty"`
	Roles         []string `json:"roles,omitempty"`
	TermsAccepted string   `json:"termsAccepted,omitempty"`
	EmailVerified bool     `json:"emailVerified,omitempty"`
}

// Login pairs the authenticated user id with the full account record.
type Login struct {
	UserID string `json:"userid"`
	User   User   `json:"user"`
}

// CustodialAccount is the outcome of the custodial account pipeline: the new
// account's id and the profile record as written by the metadata service.
type CustodialAccount struct {
	UserID  string          `json:"userid"`
	Profile json.RawMessage `json:"profile"`
}
