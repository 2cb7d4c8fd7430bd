package statusmap

import (
	"platform-client/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// Transform turns a matched response body into the call's result by writing
// into out. A nil Transform leaves out untouched.
type Transform func(body []byte, out interface{}) error

// Map associates the HTTP status codes a call expects with the transform
// producing its result. Status codes absent from the map are error
// conditions.
type Map map[int]Transform

// Body decodes the response body as JSON into out.
func Body(body []byte, out interface{}) error {
	if out == nil || len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

// EmptyList ignores the response body and decodes an empty JSON array into
// out. List endpoints map 404 through this so "not found" reads as an empty
// collection.
func EmptyList(body []byte, out interface{}) error {
	if out == nil {
		return nil
	}
	return json.Unmarshal([]byte("[]"), out)
}

// Null discards the response body and leaves out untouched.
func Null(body []byte, out interface{}) error {
	return nil
}

// Resolve selects the transform mapped to statusCode and applies it. An
// unmapped status yields an error carrying the status code and the raw body.
func (m Map) Resolve(statusCode int, body []byte, out interface{}) error {
	transform, ok := m[statusCode]
	if !ok {
		return exceptions.ErrUnexpectedStatus(statusCode, body)
	}
	if transform == nil {
		return nil
	}
	return transform(body, out)
}
