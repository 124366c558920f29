package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrBadRequest   = errors.New("upstream rejected the request")
	ErrUnauthorized = errors.New("upstream rejected the credentials")
	ErrForbidden    = errors.New("upstream denied access")
	ErrNotFound     = errors.New("upstream resource not found")
	ErrConflict     = errors.New("upstream reported a conflict")
	ErrServer       = errors.New("upstream server error")

	// ErrNoRefreshToken is returned by the refresh path when no refresh token is stored.
	ErrNoRefreshToken = errors.New("no refresh token stored")
	ErrRefreshFailed  = errors.New("token refresh failed")
)

// StatusError is returned for any non-2xx upstream response.
// The body is kept verbatim so callers can surface field errors.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: upstream returned %d", e.Method, e.Path, e.StatusCode)
}

// Is lets errors.Is match a StatusError against the status sentinels above.
func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrBadRequest:
		return e.StatusCode == http.StatusBadRequest
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrConflict:
		return e.StatusCode == http.StatusConflict
	case ErrServer:
		return e.StatusCode >= http.StatusInternalServerError
	}
	return false
}

func newStatusError(req Request, resp *Response) *StatusError {
	return &StatusError{
		Method:     req.method(),
		Path:       req.Path,
		StatusCode: resp.StatusCode,
		Body:       resp.Body,
	}
}

// AsStatusError returns the StatusError in err's chain, if any.
func AsStatusError(err error) (*StatusError, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
