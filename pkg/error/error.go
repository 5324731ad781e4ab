package error

import (
	"errors"
	"fmt"
	"strconv"
)

type Error struct {
	Code    string
	Message string
	Inner   error

	// set for errors raised from a remote call
	URL        string
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("error code: %s, message: %s, url: %s, status: %d, body: %s", e.Code, e.Message, e.URL, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("error code: %s, message: %s", e.Code, e.Message)
}

func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	return errors.Is(e.Inner, target)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Inner
}

type ErrorCode int

const (
	ErrUnknown ErrorCode = iota + 1000001
	ErrInvalidArgument
	ErrNotFound
	ErrPermissionDenied
	ErrUnsupportedProvider
	ErrMetadataFetch
	ErrAccessGrant
	ErrCredentialExchange
	ErrNoMatchingAccessMethod
	ErrMissingChecksum
	ErrIdentityToken
)

func (c ErrorCode) String() string {
	return strconv.Itoa(int(c))
}

// IsCode reports whether any *Error in err's chain carries code.
func IsCode(err error, code ErrorCode) bool {
	var appErr *Error
	for err != nil {
		if !errors.As(err, &appErr) {
			return false
		}
		if appErr.Code == code.String() {
			return true
		}
		err = appErr.Inner
	}
	return false
}

func wrapError(code ErrorCode, msg string, err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code.String(),
		Message: fmt.Sprintf("%s: %s", msg, err.Error()),
		Inner:   err,
	}
}

func wrapRemoteError(code ErrorCode, msg, url string, statusCode int, body string) *Error {
	e := wrapError(code, msg, fmt.Errorf("request %s got status code %d", url, statusCode))
	e.URL = url
	e.StatusCode = statusCode
	e.Body = body
	return e
}

// NewInvalidArgumentError ...
func NewInvalidArgumentError(param, content string) *Error {
	return wrapError(ErrInvalidArgument, "invalid argument", fmt.Errorf("%s %s is invalid", param, content))
}

// NewNotFoundError ...
func NewNotFoundError(param, content string) *Error {
	return wrapError(ErrNotFound, "object not found", fmt.Errorf("%s %s not found", param, content))
}

// NewInternalError ...
func NewInternalError(err error) *Error {
	return wrapError(ErrUnknown, "server internal error", err)
}

// NewPermissionDeniedError ...
func NewPermissionDeniedError(param, content string) *Error {
	return wrapError(ErrPermissionDenied, "no permission to do", fmt.Errorf("%s %s not permission", param, content))
}

// NewUnsupportedProviderError is returned when no provider route matches a DRS URI.
func NewUnsupportedProviderError(uri string) *Error {
	return wrapError(ErrUnsupportedProvider, "unsupported provider", fmt.Errorf("support for DRS URI %s has not yet been implemented", uri))
}

// NewNoMatchingAccessMethodError ...
func NewNoMatchingAccessMethodError(uri, accessType string) *Error {
	return wrapError(ErrNoMatchingAccessMethod, "no matching access method", fmt.Errorf("DRS object %s has no access method of type %s", uri, accessType))
}

// NewMissingChecksumError ...
func NewMissingChecksumError(uri, algorithm string) *Error {
	return wrapError(ErrMissingChecksum, "missing checksum", fmt.Errorf("DRS object %s has no %s checksum", uri, algorithm))
}

// NewMetadataFetchError ...
func NewMetadataFetchError(url string, statusCode int, body string) *Error {
	return wrapRemoteError(ErrMetadataFetch, "failed to fetch DRS metadata", url, statusCode, body)
}

// NewAccessGrantError ...
func NewAccessGrantError(url string, statusCode int, body string) *Error {
	return wrapRemoteError(ErrAccessGrant, "failed to fetch DRS access url", url, statusCode, body)
}

// NewCredentialExchangeError ...
func NewCredentialExchangeError(url string, statusCode int, body string) *Error {
	return wrapRemoteError(ErrCredentialExchange, "failed to exchange credential", url, statusCode, body)
}

// NewIdentityTokenError ...
func NewIdentityTokenError(err error) *Error {
	return wrapError(ErrIdentityToken, "failed to acquire identity token", err)
}
