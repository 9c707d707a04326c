package httpclientx

//
// errors.go - the closed error taxonomy.
//

import "errors"

// ErrTransport indicates that the HTTP round trip itself failed: DNS
// resolution, connection setup, protocol errors, timeouts, and body read
// failures all map here. The specific cause is logged at debug level and
// deliberately not part of the returned error.
var ErrTransport = errors.New("httpclientx: transport failed")

// ErrJSONParse indicates that we could not decode the response body into
// the output type. Malformed syntax, a required field missing from the
// body, an unknown field when unknown fields are not tolerated, a type
// mismatch, and a body truncated by too-small static storage all map
// here. The specific cause is logged at debug level.
var ErrJSONParse = errors.New("httpclientx: cannot parse response body")

// ErrOutOfMemory indicates that growing a dynamic response buffer failed.
var ErrOutOfMemory = errors.New("httpclientx: out of memory")

// ErrRequestFailed indicates that the server returned a status code other
// than 200. Use [errors.As] to access the status code.
type ErrRequestFailed struct {
	// StatusCode is the status code that failed the request.
	StatusCode int
}

var _ error = &ErrRequestFailed{}

// Error implements error.
func (err *ErrRequestFailed) Error() string {
	return "httpclientx: request failed"
}
