package sgd

import "fmt"

// InvalidGeneError is returned when a gene name has no entry in the
// bundled gene-to-locus mapping. It carries the name exactly as the
// caller supplied it.
type InvalidGeneError struct {
	GeneName string
}

func (e *InvalidGeneError) Error() string {
	return fmt.Sprintf("could not find gene with name %q", e.GeneName)
}

// HTTPError is returned when the SGD backend answers with a non-2xx
// status. The body is read in full so callers can inspect the server's
// error payload. Requests are never retried.
type HTTPError struct {
	StatusCode int
	URL        string
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("sgd: GET %s returned status %d: %s", e.URL, e.StatusCode, string(e.Body))
}

// TransportError is returned on connection-level failures (DNS, timeout,
// TLS handshake) before any HTTP status is available.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("sgd: GET %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
