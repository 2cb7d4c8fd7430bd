package requests

type ConsentMetadata struct {
	SupportedOrganizations []string `json:"supportedOrganizations,omitempty"`
}

type ConsentRecord struct {
	AgeGroup           string           `json:"ageGroup" validate:"required,oneof=<13 13-17 >=18"`
	OwnerName          string           `json:"ownerName" validate:"required"`
	ParentGuardianName string           `json:"parentGuardianName,omitempty"`
	GrantorType        string           `json:"grantorType" validate:"required,oneof=owner parent/guardian"`
	Type               string           `json:"type" validate:"required"`
	Metadata           *ConsentMetadata `json:"metadata,omitempty"`
	Version            int              `json:"version" validate:"gte=1"`
}

type ConsentRecordUpdate struct {
	Metadata *ConsentMetadata `json:"metadata" validate:"required"`
}
