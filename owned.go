package httpclientx

//
// owned.go - the owned decoded result.
//

import (
	"bytes"
	"sync/atomic"

	"github.com/ooni/httpclientx/internal/runtimex"
)

// Owned bundles a decoded value with the allocations backing it. The
// caller exclusively owns the result and must call [Owned.Release] exactly
// once to reclaim it; accessing the result after Release panics.
//
// Construct via [FetchJSON], [GetJSON], or [PostJSON].
type Owned[Type any] struct {
	value    Type
	raw      []byte
	pooled   *bytes.Buffer
	released atomic.Bool
}

// newOwnedCopy creates an [*Owned] whose raw-body view is an independent
// snapshot held in a pooled buffer reclaimed by [Owned.Release].
func newOwnedCopy[Type any](value Type, raw []byte) (*Owned[Type], error) {
	buffer := acquireBuffer()
	err := catchingOutOfMemory(func() error {
		_, err := buffer.Write(raw)
		return err
	})
	if err != nil {
		releaseBuffer(buffer)
		return nil, err
	}
	return &Owned[Type]{
		value:  value,
		raw:    buffer.Bytes(),
		pooled: buffer,
	}, nil
}

// newOwnedBorrowed creates an [*Owned] whose raw-body view aliases the
// caller-supplied response storage.
func newOwnedBorrowed[Type any](value Type, raw []byte) *Owned[Type] {
	return &Owned[Type]{
		value:  value,
		raw:    raw,
		pooled: nil,
	}
}

// Value returns the decoded value. Calling Value after [Owned.Release]
// panics.
func (o *Owned[Type]) Value() Type {
	runtimex.PanicIfTrue(o.released.Load(), "httpclientx: use after Release")
	return o.value
}

// RawBody returns the raw response bytes backing the value. Under
// [CopyIfNeeded] with caller-supplied storage the returned slice aliases
// that storage; otherwise it is an independent snapshot owned by the
// result. Calling RawBody after [Owned.Release] panics.
func (o *Owned[Type]) RawBody() []byte {
	runtimex.PanicIfTrue(o.released.Load(), "httpclientx: use after Release")
	return o.raw
}

// Release reclaims the allocations owned by the result. Each result must
// be released exactly once; a second Release panics.
func (o *Owned[Type]) Release() {
	runtimex.PanicIfTrue(o.released.Swap(true), "httpclientx: Release called twice")
	if o.pooled != nil {
		releaseBuffer(o.pooled)
		o.pooled = nil
	}
	o.raw = nil
}
