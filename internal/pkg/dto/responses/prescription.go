package responses

// Prescription documents are owned by the prescription service and passed
// through undecoded.
type Prescription map[string]interface{}
