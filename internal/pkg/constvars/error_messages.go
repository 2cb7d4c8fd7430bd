package constvars

// Client messages are safe to surface to end users; dev messages are for logs
// and wrapped error chains.
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidUsernameOrPassword     = "invalid username or password"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the platform is taking too long to respond"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientNotAuthorized                 = "you can't access this feature"
)

const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevValidationFailed           = "request validation failed"
	ErrDevMissingRequiredField       = "missing required field [%s]"
	ErrDevMissingPathSegment         = "missing required path segment [%s]"
	ErrDevCannotMarshalJSON          = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseJSON            = "cannot parse JSON into struct or other data types"
	ErrDevCreateHTTPRequest          = "failed to create HTTP request"
	ErrDevSendHTTPRequest            = "failed to send HTTP request"
	ErrDevReadResponseBody           = "failed to read response body"
	ErrDevDecodeResponse             = "failed to decode %s response"
	ErrDevUnexpectedStatus           = "unexpected status %d from platform: %s"
	ErrDevMissingSessionTokenHeader  = "response carries no session token header"
	ErrDevServerDeadlineExceeded     = "platform did not respond before the deadline"
	ErrDevRateLimiterWait            = "request pacing wait failed"
	ErrDevTokenStorageGet            = "failed to read token from storage under key %s"
	ErrDevTokenStorageSet            = "failed to persist token under key %s"
	ErrDevTokenStorageDelete         = "failed to remove token under key %s"
	ErrDevCustodialAccountIncomplete = "custodial account pipeline aborted"
)
