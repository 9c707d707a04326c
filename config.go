package httpclientx

//
// config.go - configuration shared by all calls.
//

import "github.com/ooni/httpclientx/model"

// DefaultMaxResponseBodySize is the default cap on the size of a response
// body read into dynamic storage.
const DefaultMaxResponseBodySize = 1 << 22

// Config contains configuration shared by [FetchJSON], [GetJSON],
// [GetRaw], and [PostJSON].
//
// The zero value is invalid; initialize the MANDATORY fields.
type Config struct {
	// Accept contains the OPTIONAL Accept header value to use.
	Accept string

	// Authorization contains the OPTIONAL Authorization header value to use.
	Authorization string

	// Client is the MANDATORY [model.HTTPClient] to use. The client must be
	// safe for concurrent use, as [*http.Client] is; this package adds no
	// shared mutable state across calls.
	Client model.HTTPClient

	// Logger is the OPTIONAL [model.Logger] to use. Diagnostic causes behind
	// the coarse returned errors are emitted at debug level. A nil Logger
	// discards diagnostics.
	Logger model.Logger

	// MaxResponseBodySize is the OPTIONAL cap on the size of a response body
	// read into dynamic storage. A zero or negative value means
	// [DefaultMaxResponseBodySize]. Bodies larger than the cap are silently
	// truncated and typically fail the subsequent decode.
	MaxResponseBodySize int64

	// UserAgent is the OPTIONAL User-Agent header value to use. An empty
	// value means [model.HTTPHeaderUserAgent].
	UserAgent string
}

// logger returns the logger to use.
func (c *Config) logger() model.Logger {
	return model.ValidLoggerOrDefault(c.Logger)
}

// maxResponseBodySize returns the body-size cap to use.
func (c *Config) maxResponseBodySize() int64 {
	if c.MaxResponseBodySize > 0 {
		return c.MaxResponseBodySize
	}
	return DefaultMaxResponseBodySize
}

// userAgent returns the User-Agent header value to use.
func (c *Config) userAgent() string {
	if c.UserAgent != "" {
		return c.UserAgent
	}
	return model.HTTPHeaderUserAgent
}
