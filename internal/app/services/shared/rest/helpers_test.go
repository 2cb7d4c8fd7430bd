package rest

import (
	"net/http"

	"github.com/goccy/go-json"
)

func decodeJSONBody(r *http.Request, out interface{}) {
	defer r.Body.Close()
	json.NewDecoder(r.Body).Decode(out)
}
