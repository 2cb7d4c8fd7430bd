package requests

// Prescriptions are opaque documents defined by the prescription service
// schema; the client marshals them without interpretation.
type Prescription map[string]interface{}

type PrescriptionRevision map[string]interface{}
