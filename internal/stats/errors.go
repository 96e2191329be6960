package stats

import "fmt"

// TransportError is a request that never produced a response:
// DNS, connection refused, reset, or a URL that cannot be requested.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("Request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError is a non-200 response from the stats service.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API returned status %d: %s", e.StatusCode, e.Body)
}

// ResponseFormatError is a 200 response whose body is not valid JSON.
type ResponseFormatError struct {
	Body string
	Err  error
}

func (e *ResponseFormatError) Error() string {
	return fmt.Sprintf("Failed to parse JSON response: %v", e.Err)
}

func (e *ResponseFormatError) Unwrap() error {
	return e.Err
}
