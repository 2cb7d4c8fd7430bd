package queries

import (
	"fmt"
	"net/url"
	"platform-client/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// Serialize flattens a non-empty options mapping into a URL query string.
// Scalar values are printed as-is; mapping values are JSON-stringified so
// structured filters travel as a single parameter. An empty mapping yields
// an empty string.
func Serialize(options map[string]interface{}) (string, error) {
	if len(options) == 0 {
		return "", nil
	}

	values := url.Values{}
	for key, value := range options {
		if value == nil {
			continue
		}
		switch v := value.(type) {
		case string:
			values.Set(key, v)
		case bool:
			values.Set(key, fmt.Sprintf("%t", v))
		case int, int32, int64, uint, uint32, uint64:
			values.Set(key, fmt.Sprintf("%d", v))
		case float32, float64:
			values.Set(key, fmt.Sprintf("%v", v))
		case fmt.Stringer:
			values.Set(key, v.String())
		default:
			encoded, err := json.Marshal(v)
			if err != nil {
				return "", exceptions.ErrCannotMarshalJSON(err)
			}
			values.Set(key, string(encoded))
		}
	}
	return values.Encode(), nil
}

// AppendToPath attaches the serialized options to path when any are present.
func AppendToPath(path string, options map[string]interface{}) (string, error) {
	queryString, err := Serialize(options)
	if err != nil {
		return "", err
	}
	if queryString == "" {
		return path, nil
	}
	return path + "?" + queryString, nil
}
