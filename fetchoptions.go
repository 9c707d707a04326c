package httpclientx

//
// fetchoptions.go - per-call request and decode settings.
//

import "net/http"

// FetchOptions contains the per-call request settings.
//
// The zero value is invalid; initialize the MANDATORY fields.
type FetchOptions struct {
	// Endpoint is the MANDATORY endpoint to fetch.
	Endpoint *Endpoint

	// Body is the OPTIONAL raw request body to send.
	Body []byte

	// Header contains OPTIONAL additional headers, passed through to the
	// request untouched. Headers set here take precedence over the
	// equivalent [Config] fields.
	Header http.Header

	// Method is the OPTIONAL request method. An empty value means "GET".
	Method string

	// Storage is the OPTIONAL response storage destination. When nil, the
	// call acquires a pooled buffer and releases it before returning, which
	// also forces [CopyAlways] for the decode step.
	Storage ResponseStorage
}

// method returns the request method to use.
func (fo *FetchOptions) method() string {
	if fo.Method != "" {
		return fo.Method
	}
	return "GET"
}

// CopyPolicy controls whether a decoded result may keep referencing the
// response storage or must own an independent snapshot of it.
type CopyPolicy int

const (
	// CopyAlways forces the result to own an independent copy of the raw
	// response bytes. This is the zero value and the policy forced when the
	// call self-manages its storage, because the pooled buffer is recycled
	// before the caller could retain a reference into it.
	CopyAlways = CopyPolicy(iota)

	// CopyIfNeeded allows [Owned.RawBody] to alias caller-supplied storage
	// rather than copying it. It only takes effect when [FetchOptions]
	// carries caller-supplied storage.
	CopyIfNeeded
)

// DecodeOptions contains the per-call decode settings.
//
// The zero value is valid: unknown fields are rejected and the result owns
// an independent copy of the raw response bytes.
type DecodeOptions struct {
	// AllowUnknownFields indicates whether fields present in the response
	// body but absent from the output type are tolerated rather than fatal.
	// Fields required by the output type but missing from the body are
	// always fatal, regardless of this setting.
	AllowUnknownFields bool

	// CopyPolicy is the allocation strategy for the result's raw-body view.
	CopyPolicy CopyPolicy
}
