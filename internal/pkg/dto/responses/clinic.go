package responses

type PhoneNumber struct {
	Type   string `json:"type,omitempty"`
	Number string `json:"number,omitempty"`
}

type Clinic struct {
	ID           string        `json:"id"`
	Name         string        `json:"name,omitempty"`
	Address      string        `json:"address,omitempty"`
	City         string        `json:"city,omitempty"`
	PostalCode   string        `json:"postalCode,omitempty"`
	State        string        `json:"state,omitempty"`
	Country      string        `json:"country,omitempty"`
	PhoneNumbers []PhoneNumber `json:"phoneNumbers,omitempty"`
	ClinicType   string        `json:"clinicType,omitempty"`
	ClinicSize   int           `json:"clinicSize,omitempty"`
	Email        string        `json:"email,omitempty"`
	ShareCode    string        `json:"shareCode,omitempty"`
	CreatedTime  string        `json:"createdTime,omitempty"`
	UpdatedTime  string        `json:"updatedTime,omitempty"`
}

type Clinician struct {
	ID          string   `json:"id"`
	InviteID    string   `json:"inviteId,omitempty"`
	Email       string   `json:"email,omitempty"`
	Name        string   `json:"name,omitempty"`
	Roles       []string `json:"roles,omitempty"`
	CreatedTime string   `json:"createdTime,omitempty"`
	UpdatedTime string   `json:"updatedTime,omitempty"`
}

type ClinicPatient struct {
	ID            string                 `json:"id"`
	Email         string                 `json:"email,omitempty"`
	FullName      string                 `json:"fullName,omitempty"`
	BirthDate     string                 `json:"birthDate,omitempty"`
	MRN           string                 `json:"mrn,omitempty"`
	TargetDevices []string               `json:"targetDevices,omitempty"`
	Permissions   map[string]interface{} `json:"permissions,omitempty"`
	CreatedTime   string                 `json:"createdTime,omitempty"`
	UpdatedTime   string                 `json:"updatedTime,omitempty"`
}

type Invite struct {
	Key         string   `json:"key,omitempty"`
	Type        string   `json:"type,omitempty"`
	Email       string   `json:"email,omitempty"`
	Status      string   `json:"status,omitempty"`
	Roles       []string `json:"roles,omitempty"`
	CreatorID   string   `json:"creatorId,omitempty"`
	CreatedTime string   `json:"created,omitempty"`
}

// ClinicRelationship pairs a clinic with the patient record it holds for the
// user the lookup was scoped to.
type ClinicRelationship struct {
	Clinic  Clinic         `json:"clinic"`
	Patient *ClinicPatient `json:"patient,omitempty"`
}
