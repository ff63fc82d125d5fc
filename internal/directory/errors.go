package directory

import (
	"errors"
	"fmt"
)

// FetchError is returned for any failed call to the directory API:
// transport failure, a non-2xx response or a body that does not decode.
type FetchError struct {
	// Op is the stage that failed: "request", "status" or "decode".
	Op string

	// URL is the requested address.
	URL string

	// StatusCode is the HTTP status, zero when no response arrived.
	StatusCode int

	Err error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("directory: %s %s: HTTP %d: %v", e.Op, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("directory: %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsStatus reports whether err is a FetchError carrying the given HTTP status.
func IsStatus(err error, code int) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr) && fetchErr.StatusCode == code
}
