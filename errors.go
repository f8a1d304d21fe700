package fiveoneone

import (
	"fmt"
	"net/url"
)

// maxErrorBody bounds how much of a failed response an HTTPError keeps.
const maxErrorBody = 512

// TransportError is a failure below HTTP: DNS, connect, timeout, reading the
// body or writing a download to disk.
type TransportError struct {
	Op  string
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// HTTPError is returned for any non-2xx response. Body holds the start of the
// response body.
type HTTPError struct {
	StatusCode int
	Status     string
	URL        string
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("HTTP %d from %s: %s", e.StatusCode, e.URL, e.Body)
}

// DecodeError is a response body that is not valid JSON, or bytes that are not
// a valid GTFS-Realtime FeedMessage.
type DecodeError struct {
	Format string // "json" or "protobuf"
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// redactURL hides the api_key query value so errors and logs can be shared.
func redactURL(u *url.URL) string {
	if u == nil {
		return ""
	}
	q := u.Query()
	if q.Has("api_key") {
		q.Set("api_key", "REDACTED")
	}
	c := *u
	c.RawQuery = q.Encode()
	return c.String()
}
