package exceptions

import (
	"fmt"
	"platform-client/internal/pkg/constvars"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrMissingField = func(fieldName string) *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevMissingRequiredField, fieldName))
	}
	ErrMissingPathSegment = func(segmentName string) *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevMissingPathSegment, segmentName))
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevSendHTTPRequest)
	}
	ErrReadResponseBody = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevReadResponseBody)
	}
	ErrDecodeResponse = func(err error, resourceName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevDecodeResponse, resourceName))
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrRateLimiterWait = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRateLimiterWait)
	}
	ErrInvalidUsernameOrPassword = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientInvalidUsernameOrPassword, constvars.ErrDevInvalidInput)
	}
	ErrMissingSessionTokenHeader = func() *CustomError {
		return WrapWithoutError(constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevMissingSessionTokenHeader)
	}

	// Token storage
	ErrTokenStorageGet = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevTokenStorageGet, key))
	}
	ErrTokenStorageSet = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevTokenStorageSet, key))
	}
	ErrTokenStorageDelete = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevTokenStorageDelete, key))
	}
)

// ErrUnexpectedStatus reports a response status that is absent from the call's
// status map. The raw response body travels with the error so callers can
// inspect what the platform said.
func ErrUnexpectedStatus(statusCode int, body []byte) *CustomError {
	customErr := WrapWithoutError(statusCode, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevUnexpectedStatus, statusCode, string(body)))
	customErr.ResponseBody = string(body)
	return customErr
}
