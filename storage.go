package httpclientx

//
// storage.go - response storage destinations and buffer pooling.
//

import (
	"bytes"
	"errors"
	"io"
	"sync"
	"sync/atomic"
)

// ResponseStorage is the destination where a call writes the raw response
// body. There are three possibilities:
//
// 1. a nil [ResponseStorage] in [FetchOptions] means the call self-manages
// a pooled buffer, released before the call returns;
//
// 2. a [*DynamicStorage] wraps a caller-owned growable buffer;
//
// 3. a [*StaticStorage] wraps a caller-owned fixed-capacity slice.
//
// Caller-supplied storage is owned by the caller before and after the
// call; the call only writes into it.
type ResponseStorage interface {
	// fill reads the whole response body from reader into the storage.
	fill(reader io.Reader) error

	// bytes returns the bytes written by fill.
	bytes() []byte

	// truncated indicates whether fill discarded part of the body.
	truncated() bool
}

// DynamicStorage is a [ResponseStorage] wrapping a caller-owned growable
// buffer. Construct using [NewDynamicStorage].
type DynamicStorage struct {
	buffer *bytes.Buffer
}

// NewDynamicStorage constructs a [*DynamicStorage] wrapping the given
// buffer. The buffer is reset before each fill.
func NewDynamicStorage(buffer *bytes.Buffer) *DynamicStorage {
	return &DynamicStorage{buffer: buffer}
}

var _ ResponseStorage = &DynamicStorage{}

func (ds *DynamicStorage) fill(reader io.Reader) error {
	ds.buffer.Reset()
	return catchingOutOfMemory(func() error {
		_, err := ds.buffer.ReadFrom(reader)
		return err
	})
}

func (ds *DynamicStorage) bytes() []byte {
	return ds.buffer.Bytes()
}

func (ds *DynamicStorage) truncated() bool {
	return false
}

// StaticStorage is a [ResponseStorage] wrapping a caller-owned
// fixed-capacity slice. Construct using [NewStaticStorage].
//
// When the response body is larger than the slice capacity, fill stops at
// capacity and the subsequent decode typically fails, which the caller
// observes as [ErrJSONParse]. There is no distinct buffer-too-small error.
type StaticStorage struct {
	slice []byte
	count int
	trunc bool
}

// NewStaticStorage constructs a [*StaticStorage] using cap(slice) as the
// storage capacity.
func NewStaticStorage(slice []byte) *StaticStorage {
	return &StaticStorage{slice: slice[:cap(slice)]}
}

var _ ResponseStorage = &StaticStorage{}

func (ss *StaticStorage) fill(reader io.Reader) error {
	ss.count, ss.trunc = 0, false
	total := 0
	for total < len(ss.slice) {
		count, err := reader.Read(ss.slice[total:])
		total += count
		if errors.Is(err, io.EOF) {
			ss.count = total
			return nil
		}
		if err != nil {
			return err
		}
	}
	ss.count = total
	// probe for leftover body so we can log the truncation
	var probe [1]byte
	if count, _ := reader.Read(probe[:]); count > 0 {
		ss.trunc = true
	}
	return nil
}

func (ss *StaticStorage) bytes() []byte {
	return ss.slice[:ss.count]
}

func (ss *StaticStorage) truncated() bool {
	return ss.trunc
}

// defaultBufferCapacity is the initial capacity of self-managed buffers.
const defaultBufferCapacity = 1024

// bufferPool recycles self-managed response buffers across calls.
var bufferPool = &sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, defaultBufferCapacity))
	},
}

// outstandingBuffers counts pooled buffers currently held by in-flight
// calls or unreleased results.
var outstandingBuffers = &atomic.Int64{}

// acquireBuffer obtains a reset buffer from the pool.
func acquireBuffer() *bytes.Buffer {
	outstandingBuffers.Add(1)
	buffer := bufferPool.Get().(*bytes.Buffer)
	buffer.Reset()
	return buffer
}

// releaseBuffer returns a buffer obtained via [acquireBuffer] to the pool.
func releaseBuffer(buffer *bytes.Buffer) {
	bufferPool.Put(buffer)
	outstandingBuffers.Add(-1)
}

// catchingOutOfMemory invokes fn converting the [bytes.ErrTooLarge] panic
// caused by failed buffer growth into [ErrOutOfMemory]. Any other panic
// propagates.
func catchingOutOfMemory(fn func() error) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			if recerr, good := rec.(error); good && errors.Is(recerr, bytes.ErrTooLarge) {
				err = ErrOutOfMemory
				return
			}
			panic(rec)
		}
	}()
	return fn()
}
