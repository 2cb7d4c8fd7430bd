package responses

type Consent struct {
	Type    string `json:"type"`
	Version int    `json:"version"`
	Content string `json:"content,omitempty"`
}

type ConsentRecordMetadata struct {
	SupportedOrganizations []string `json:"supportedOrganizations,omitempty"`
}

type UserConsentRecord struct {
	ID                 string                 `json:"id"`
	AgeGroup           string                 `json:"ageGroup,omitempty"`
	OwnerName          string                 `json:"ownerName,omitempty"`
	ParentGuardianName string                 `json:"parentGuardianName,omitempty"`
	GrantorType        string                 `json:"grantorType,omitempty"`
	Type               string                 `json:"type,omitempty"`
	Metadata           *ConsentRecordMetadata `json:"metadata,omitempty"`
	Version            int                    `json:"version,omitempty"`
	Status             string                 `json:"status,omitempty"`
	CreatedTime        string                 `json:"createdTime,omitempty"`
	RevokedTime        string                 `json:"revokedTime,omitempty"`
}
