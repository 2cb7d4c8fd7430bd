package responses

// Device is a CGM or pump catalog entry. The catalog schema is owned by the
// device service; unrecognized fields are dropped on decode.
type Device struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName,omitempty"`
}
