package httpclientx

//
// getjson.go - fetch and decode a JSON response.
//

import (
	"context"

	"github.com/ooni/httpclientx/internal/runtimex"
	"github.com/ooni/httpclientx/internal/strictjson"
)

// FetchJSON sends a request and decodes the JSON response body into a
// value of the Output type.
//
// Arguments:
//
// - ctx is the cancellable context;
//
// - config contains the shared configuration;
//
// - options contains the per-call request settings;
//
// - decode contains the per-call decode settings (nil means defaults).
//
// This function either returns an error belonging to the closed set
// documented in errors.go or an owned result that the caller must release
// exactly once via [Owned.Release].
//
// It is safe to call FetchJSON concurrently from multiple goroutines using
// the same [*Config], provided the configured client is itself safe for
// concurrent use; each call's self-managed buffer is call-local.
func FetchJSON[Output any](ctx context.Context, config *Config,
	options *FetchOptions, decode *DecodeOptions) (*Owned[Output], error) {
	runtimex.PanicIfNil(options, "httpclientx: nil FetchOptions")
	var dopts DecodeOptions
	if decode != nil {
		dopts = *decode
	}

	// determine the storage mode once at entry: with no caller-supplied
	// storage we self-manage a pooled buffer, guaranteed to return to the
	// pool on every exit path, and we force CopyAlways because the buffer
	// will not outlive this call
	storage := options.Storage
	selfManaged := storage == nil
	if selfManaged {
		buffer := acquireBuffer()
		defer releaseBuffer(buffer)
		storage = NewDynamicStorage(buffer)
		dopts.CopyPolicy = CopyAlways
	}

	// perform the round trip and fill the storage
	if err := do(ctx, config, options, storage); err != nil {
		return nil, err
	}

	// decode the raw body honoring the leniency setting
	rawrespbody := storage.bytes()
	var output Output
	if err := strictjson.Unmarshal(rawrespbody, &output, dopts.AllowUnknownFields); err != nil {
		config.logger().Debugf("httpclientx: %s: cannot parse response body: %s",
			options.Endpoint.URL, err.Error())
		return nil, ErrJSONParse
	}

	// reject a literal JSON null decoded into a nil map, pointer, or slice
	if _, err := NilSafetyErrorIfNil(output); err != nil {
		config.logger().Debugf("httpclientx: %s: %s", options.Endpoint.URL, err.Error())
		return nil, ErrJSONParse
	}

	// hand out a result that borrows caller storage only when the caller
	// both supplied the storage and asked for CopyIfNeeded
	if dopts.CopyPolicy == CopyIfNeeded && !selfManaged {
		return newOwnedBorrowed(output, rawrespbody), nil
	}
	return newOwnedCopy(output, rawrespbody)
}

// GetJSON sends a GET request and decodes the JSON response body.
//
// Arguments:
//
// - ctx is the cancellable context;
//
// - config contains the shared configuration;
//
// - URL is the URL to use.
//
// This function is a convenience wrapper around [FetchJSON] using default
// fetch and decode options.
func GetJSON[Output any](ctx context.Context, config *Config, URL string) (*Owned[Output], error) {
	return FetchJSON[Output](ctx, config, &FetchOptions{Endpoint: NewEndpoint(URL)}, nil)
}
