package constvars

const (
	QueryParamLimit  = "limit"
	QueryParamOffset = "offset"
	QueryParamSearch = "search"
	QueryParamEmail  = "email"
	QueryParamType   = "type"
)
