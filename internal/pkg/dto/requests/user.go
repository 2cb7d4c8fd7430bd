package requests

// Login authenticates against the platform auth service with HTTP basic auth.
type Login struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type Signup struct {
	Username string   `json:"username" validate:"required"`
	Password string   `json:"password" validate:"required"`
	Emails   []string `json:"emails,omitempty"`
	Roles    []string `json:"roles,omitempty"`
}

// UserUpdate carries the allow-listed account fields accepted by the auth
// service. Fields outside this set never reach the wire.
type UserUpdate struct {
	Username      string   `json:"username,omitempty"`
	Password      string   `json:"password,omitempty"`
	Emails        []string `json:"emails,omitempty"`
	TermsAccepted string   `json:"termsAccepted,omitempty"`
}

type AcceptTerms struct {
	Terms string `json:"terms" validate:"required"`
}

// CustodialProfile seeds the three-step custodial account pipeline. Profile
// content beyond the typed fields passes through to the metadata service
// unmodified.
type CustodialProfile struct {
	FullName string                 `json:"fullName" validate:"required"`
	Emails   []string               `json:"emails,omitempty"`
	Patient  map[string]interface{} `json:"patient,omitempty"`
}

// SessionOptions controls whether a freshly issued token is mirrored into
// persistent storage or kept in-memory only.
type SessionOptions struct {
	Remember bool
}
