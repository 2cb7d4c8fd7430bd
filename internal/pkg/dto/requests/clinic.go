package requests

type PhoneNumber struct {
	Type   string `json:"type,omitempty"`
	Number string `json:"number,omitempty"`
}

type Clinic struct {
	ID           string        `json:"id,omitempty"`
	Name         string        `json:"name,omitempty"`
	Address      string        `json:"address,omitempty"`
	City         string        `json:"city,omitempty"`
	PostalCode   string        `json:"postalCode,omitempty"`
	State        string        `json:"state,omitempty"`
	Country      string        `json:"country,omitempty"`
	PhoneNumbers []PhoneNumber `json:"phoneNumbers,omitempty"`
	ClinicType   string        `json:"clinicType,omitempty"`
	ClinicSize   int           `json:"clinicSize,omitempty"`
	Email        string        `json:"email" validate:"required,email"`
}

type Clinician struct {
	ID       string   `json:"id"`
	InviteID string   `json:"inviteId,omitempty"`
	Email    string   `json:"email"`
	Name     string   `json:"name"`
	Roles    []string `json:"roles"`
}

type ClinicianInvite struct {
	Email string   `json:"email" validate:"required,email"`
	Roles []string `json:"roles"`
}

// ClinicInvite asks the confirmation service to offer a share code to a
// clinic on behalf of a patient.
type ClinicInvite struct {
	ShareCode   string                 `json:"shareCode" validate:"required"`
	Permissions map[string]interface{} `json:"permissions"`
}

// CustodialPatient is the clinic-scoped flavor of custodial account creation.
type CustodialPatient struct {
	Email         string   `json:"email,omitempty"`
	FullName      string   `json:"fullName" validate:"required"`
	BirthDate     string   `json:"birthDate,omitempty"`
	MRN           string   `json:"mrn,omitempty"`
	TargetDevices []string `json:"targetDevices,omitempty"`
}

// Permissions records are owned by the platform; the client passes them
// through untouched.
type Permissions map[string]interface{}
