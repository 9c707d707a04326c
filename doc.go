// Package httpclientx provides a single-call helper to invoke HTTP APIs
// returning JSON bodies: one function that performs the request, reads the
// response body into caller-supplied or self-managed storage, and decodes
// it into a caller-provided Go type.
//
// The entry points are [FetchJSON], which exposes the full contract, and
// the [GetJSON] and [PostJSON] convenience wrappers. All of them compose an
// injected [model.HTTPClient] with a strict JSON decoder and return either
// an owned decoded value (see [Owned]) or one of a small closed set of
// errors (see [ErrTransport], [ErrRequestFailed], [ErrJSONParse], and
// [ErrOutOfMemory]).
//
// This package implements neither the HTTP transport nor a JSON grammar:
// redirects, TLS, pooling, and timeouts belong to the injected client, and
// decoding belongs to [encoding/json] plus the presence checks in the
// internal strictjson package. There is no retry policy: every failure is
// terminal and surfaced to the immediate caller.
package httpclientx
