package httpclientx

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDynamicStorage(t *testing.T) {
	t.Run("fill resets the buffer before reading", func(t *testing.T) {
		buffer := bytes.NewBufferString("stale content")
		storage := NewDynamicStorage(buffer)

		if err := storage.fill(strings.NewReader("fresh")); err != nil {
			t.Fatal(err)
		}

		if diff := cmp.Diff([]byte("fresh"), storage.bytes()); diff != "" {
			t.Fatal(diff)
		}
		if storage.truncated() {
			t.Fatal("dynamic storage never truncates")
		}
	})
}

func TestStaticStorage(t *testing.T) {
	t.Run("a body smaller than the capacity is stored in full", func(t *testing.T) {
		storage := NewStaticStorage(make([]byte, 0, 64))

		if err := storage.fill(strings.NewReader("antani")); err != nil {
			t.Fatal(err)
		}

		if diff := cmp.Diff([]byte("antani"), storage.bytes()); diff != "" {
			t.Fatal(diff)
		}
		if storage.truncated() {
			t.Fatal("unexpected truncation")
		}
	})

	t.Run("a body larger than the capacity is truncated", func(t *testing.T) {
		storage := NewStaticStorage(make([]byte, 0, 4))

		if err := storage.fill(strings.NewReader("antani")); err != nil {
			t.Fatal(err)
		}

		if diff := cmp.Diff([]byte("anta"), storage.bytes()); diff != "" {
			t.Fatal(diff)
		}
		if !storage.truncated() {
			t.Fatal("expected truncation")
		}
	})

	t.Run("a body exactly filling the capacity is not truncated", func(t *testing.T) {
		storage := NewStaticStorage(make([]byte, 0, 6))

		if err := storage.fill(strings.NewReader("antani")); err != nil {
			t.Fatal(err)
		}

		if diff := cmp.Diff([]byte("antani"), storage.bytes()); diff != "" {
			t.Fatal(diff)
		}
		if storage.truncated() {
			t.Fatal("unexpected truncation")
		}
	})

	t.Run("fill is repeatable", func(t *testing.T) {
		storage := NewStaticStorage(make([]byte, 0, 64))

		if err := storage.fill(strings.NewReader("antani")); err != nil {
			t.Fatal(err)
		}
		if err := storage.fill(strings.NewReader("x")); err != nil {
			t.Fatal(err)
		}

		if diff := cmp.Diff([]byte("x"), storage.bytes()); diff != "" {
			t.Fatal(diff)
		}
	})
}

func TestCatchingOutOfMemory(t *testing.T) {
	t.Run("converts bytes.ErrTooLarge panics", func(t *testing.T) {
		err := catchingOutOfMemory(func() error {
			panic(bytes.ErrTooLarge)
		})
		if !errors.Is(err, ErrOutOfMemory) {
			t.Fatal("unexpected error", err)
		}
	})

	t.Run("returns fn errors unchanged", func(t *testing.T) {
		expected := errors.New("mocked error")
		err := catchingOutOfMemory(func() error {
			return expected
		})
		if !errors.Is(err, expected) {
			t.Fatal("unexpected error", err)
		}
	})

	t.Run("propagates unrelated panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("expected a panic")
			}
		}()
		_ = catchingOutOfMemory(func() error {
			panic("unrelated")
		})
	})
}

func TestBufferPoolAccounting(t *testing.T) {
	baseline := outstandingBuffers.Load()

	buffer := acquireBuffer()
	if delta := outstandingBuffers.Load() - baseline; delta != 1 {
		t.Fatal("unexpected outstanding count", delta)
	}

	releaseBuffer(buffer)
	if delta := outstandingBuffers.Load() - baseline; delta != 0 {
		t.Fatal("unexpected outstanding count", delta)
	}
}
