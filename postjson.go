package httpclientx

//
// postjson.go - POST a JSON request and decode a JSON response.
//

import (
	"context"
	"encoding/json"
	"net/http"
)

// PostJSON sends a POST request with a JSON body and decodes the JSON
// response body.
//
// Arguments:
//
// - ctx is the cancellable context;
//
// - config contains the shared configuration;
//
// - URL is the URL to use;
//
// - input is the value to JSON serialize as the request body.
//
// A nil map, pointer, or slice input yields [ErrIsNil] rather than
// sending a literal JSON "null" to the server. On success, the caller
// must release the result exactly once via [Owned.Release].
func PostJSON[Input, Output any](ctx context.Context, config *Config,
	URL string, input Input) (*Owned[Output], error) {
	if _, err := NilSafetyErrorIfNil(input); err != nil {
		return nil, err
	}

	// serialize the request body
	rawreqbody, err := json.Marshal(input)
	if err != nil {
		return nil, err
	}
	config.logger().Debugf("httpclientx: POST %s: raw request body: %s", URL, string(rawreqbody))

	options := &FetchOptions{
		Endpoint: NewEndpoint(URL),
		Body:     rawreqbody,
		Header: http.Header{
			"Content-Type": {"application/json"},
		},
		Method: "POST",
	}
	return FetchJSON[Output](ctx, config, options, nil)
}
