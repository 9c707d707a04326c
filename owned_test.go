package httpclientx

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOwned(t *testing.T) {
	t.Run("a copying result owns an independent snapshot", func(t *testing.T) {
		raw := []byte(`{"Age": 41}`)
		owned, err := newOwnedCopy(41, raw)
		if err != nil {
			t.Fatal(err)
		}

		if owned.Value() != 41 {
			t.Fatal("unexpected value")
		}
		body := owned.RawBody()
		if diff := cmp.Diff(raw, body); diff != "" {
			t.Fatal(diff)
		}
		if &body[0] == &raw[0] {
			t.Fatal("expected an independent copy")
		}

		owned.Release()
	})

	t.Run("a borrowing result aliases the given bytes", func(t *testing.T) {
		raw := []byte(`{"Age": 41}`)
		owned := newOwnedBorrowed(41, raw)

		body := owned.RawBody()
		if &body[0] != &raw[0] {
			t.Fatal("expected an alias")
		}

		owned.Release()
	})

	t.Run("Release returns the snapshot to the pool", func(t *testing.T) {
		baseline := outstandingBuffers.Load()

		owned, err := newOwnedCopy("antani", []byte(`"antani"`))
		if err != nil {
			t.Fatal(err)
		}
		if delta := outstandingBuffers.Load() - baseline; delta != 1 {
			t.Fatal("unexpected outstanding count", delta)
		}

		owned.Release()
		if delta := outstandingBuffers.Load() - baseline; delta != 0 {
			t.Fatal("unexpected outstanding count", delta)
		}
	})

	t.Run("a second Release panics", func(t *testing.T) {
		owned := newOwnedBorrowed(41, []byte(`41`))
		owned.Release()

		defer func() {
			if recover() == nil {
				t.Fatal("expected a panic")
			}
		}()
		owned.Release()
	})

	t.Run("Value after Release panics", func(t *testing.T) {
		owned := newOwnedBorrowed(41, []byte(`41`))
		owned.Release()

		defer func() {
			if recover() == nil {
				t.Fatal("expected a panic")
			}
		}()
		_ = owned.Value()
	})

	t.Run("RawBody after Release panics", func(t *testing.T) {
		owned := newOwnedBorrowed(41, []byte(`41`))
		owned.Release()

		defer func() {
			if recover() == nil {
				t.Fatal("expected a panic")
			}
		}()
		_ = owned.RawBody()
	})
}
