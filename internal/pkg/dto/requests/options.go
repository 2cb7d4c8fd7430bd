package requests

import "platform-client/internal/pkg/constvars"

// ListOptions are the pagination and search filters accepted by the list
// endpoints. The zero value serializes to nothing.
type ListOptions struct {
	Limit  int
	Offset int
	Search string
	Email  string
}

func (o *ListOptions) Params() map[string]interface{} {
	if o == nil {
		return nil
	}
	params := map[string]interface{}{}
	if o.Limit > 0 {
		params[constvars.QueryParamLimit] = o.Limit
	}
	if o.Offset > 0 {
		params[constvars.QueryParamOffset] = o.Offset
	}
	if o.Search != "" {
		params[constvars.QueryParamSearch] = o.Search
	}
	if o.Email != "" {
		params[constvars.QueryParamEmail] = o.Email
	}
	return params
}
