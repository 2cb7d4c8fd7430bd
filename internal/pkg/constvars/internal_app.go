package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
)

const (
	REQUEST_ID_PREFIX = "PLTFM_CLI_"
)

const (
	ResourceClinic       = "clinic"
	ResourceClinician    = "clinician"
	ResourcePatient      = "patient"
	ResourcePrescription = "prescription"
	ResourceDevice       = "device"
	ResourceConsent      = "consent"
	ResourceInvite       = "invite"
	ResourceUser         = "user"
	ResourceProfile      = "profile"
	ResourceConfirmation = "confirmation"
)

const (
	EndpointClinics       = "/v1/clinics"
	EndpointClinicians    = "/v1/clinicians"
	EndpointPatients      = "/v1/patients"
	EndpointPrescriptions = "/v1/prescriptions"
	EndpointDevicesCGMs   = "/v1/devices/cgms"
	EndpointDevicesPumps  = "/v1/devices/pumps"
	EndpointConsents      = "/v1/consents"
	EndpointUsers         = "/v1/users"

	// Legacy unversioned paths served by the auth, metadata and confirmation
	// gateways.
	EndpointAuthLogin = "/auth/login"
	EndpointAuthUser  = "/auth/user"
	EndpointMetadata  = "/metadata"
	EndpointConfirm   = "/confirm"
)

// Keys under which bearer credentials are persisted in the token store. The
// access token is preferred over the legacy session token on initialization.
const (
	TokenStorageKey       = "authToken"
	AccessTokenStorageKey = "authAccessToken"
)
