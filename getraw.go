package httpclientx

//
// getraw.go - fetch a raw response body.
//

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/ooni/httpclientx/internal/runtimex"
)

// GetRaw sends a request and returns the raw response body.
//
// Arguments:
//
// - ctx is the cancellable context;
//
// - config contains the shared configuration;
//
// - options contains the per-call request settings.
//
// This function either returns an error or the raw body bytes. When
// options carries caller-supplied storage, the returned slice aliases that
// storage; otherwise it is freshly allocated.
func GetRaw(ctx context.Context, config *Config, options *FetchOptions) ([]byte, error) {
	storage := options.Storage
	if storage == nil {
		storage = NewDynamicStorage(bytes.NewBuffer(make([]byte, 0, defaultBufferCapacity)))
	}
	if err := do(ctx, config, options, storage); err != nil {
		return nil, err
	}
	return storage.bytes(), nil
}

// do sends the request described by options and fills storage with the
// response body. It returns one of the closed-set errors on failure and
// logs the underlying cause at debug level.
func do(ctx context.Context, config *Config, options *FetchOptions, storage ResponseStorage) error {
	runtimex.PanicIfNil(options.Endpoint, "httpclientx: nil Endpoint")
	logger := config.logger()

	// construct the request to use
	var reqbody io.Reader
	if options.Body != nil {
		reqbody = bytes.NewReader(options.Body)
	}
	req, err := http.NewRequestWithContext(ctx, options.method(), options.Endpoint.URL, reqbody)
	if err != nil {
		logger.Debugf("httpclientx: %s %s: invalid request: %s", options.method(), options.Endpoint.URL, err.Error())
		return ErrTransport
	}
	req.Host = options.Endpoint.Host // allow cloudfronting
	if config.Authorization != "" {
		req.Header.Set("Authorization", config.Authorization)
	}
	if config.Accept != "" {
		req.Header.Set("Accept", config.Accept)
	}
	req.Header.Set("User-Agent", config.userAgent())
	for key, values := range options.Header {
		req.Header[key] = values
	}

	// perform the round trip
	resp, err := config.Client.Do(req)
	if err != nil {
		logger.Debugf("httpclientx: %s %s failed: %s", req.Method, req.URL.String(), err.Error())
		return ErrTransport
	}
	defer resp.Body.Close()

	// only the 200 status is a success: we do not distinguish between
	// status classes here and we do not attempt to decode the body
	if resp.StatusCode != http.StatusOK {
		logger.Debugf("httpclientx: %s %s: unexpected status: %d", req.Method, req.URL.String(), resp.StatusCode)
		return &ErrRequestFailed{StatusCode: resp.StatusCode}
	}

	// transparently handle gzip encoding
	var body io.Reader = io.LimitReader(resp.Body, config.maxResponseBodySize())
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gzreader, err := gzip.NewReader(body)
		if err != nil {
			logger.Debugf("httpclientx: %s %s: cannot decompress body: %s", req.Method, req.URL.String(), err.Error())
			return ErrTransport
		}
		body = gzreader
	}

	// fill the storage destination with the response body
	if err := storage.fill(body); err != nil {
		if errors.Is(err, ErrOutOfMemory) {
			return ErrOutOfMemory
		}
		logger.Debugf("httpclientx: %s %s: cannot read body: %s", req.Method, req.URL.String(), err.Error())
		return ErrTransport
	}
	if storage.truncated() {
		logger.Debugf("httpclientx: %s %s: response body truncated to %d bytes",
			req.Method, req.URL.String(), len(storage.bytes()))
	}
	return nil
}
