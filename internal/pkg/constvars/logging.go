package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingUserIDKey         = "user_id"
	LoggingClinicIDKey       = "clinic_id"
	LoggingClinicianIDKey    = "clinician_id"
	LoggingPatientIDKey      = "patient_id"
	LoggingPrescriptionIDKey = "prescription_id"
	LoggingInviteIDKey       = "invite_id"
	LoggingConsentTypeKey    = "consent_type"
	LoggingRecordIDKey       = "record_id"
	LoggingStatusCodeKey     = "status_code"
	LoggingMethodKey         = "method"
	LoggingURLKey            = "url"
	LoggingResultCountKey    = "result_count"
	LoggingStorageKeyKey     = "storage_key"
)
