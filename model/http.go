package model

//
// Common HTTP definitions.
//

import "net/http"

// HTTPClient is an http client. We use an interface rather than the
// concrete [*http.Client] type so tests and userspace network stacks
// can replace the standard library client.
type HTTPClient interface {
	// Do behaves like [http.Client.Do].
	Do(req *http.Request) (*http.Response, error)

	// CloseIdleConnections closes idle connections, if any.
	CloseIdleConnections()
}

const (
	// HTTPHeaderAccept is the default Accept header value.
	HTTPHeaderAccept = "application/json"

	// HTTPHeaderUserAgent is the default User-Agent header value.
	HTTPHeaderUserAgent = "httpclientx/0.1.0 (+https://github.com/ooni/httpclientx)"
)
