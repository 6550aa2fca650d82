package state

import (
	"context"
	"errors"
	"testing"
)

func TestMemStore(t *testing.T) {
	ctx := context.Background()
	st := NewMemStore()

	if _, err := st.Get(ctx, "missing"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrKeyNotFound", err)
	}

	if err := st.Put(ctx, "k", []byte("v1")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	got, err := st.Get(ctx, "k")
	if err != nil || string(got) != "v1" {
		t.Fatalf("Get() = %q, %v; want v1", got, err)
	}

	if err := st.Put(ctx, "k", []byte("v2")); err != nil {
		t.Fatalf("Put() overwrite error = %v", err)
	}
	got, _ = st.Get(ctx, "k")
	if string(got) != "v2" {
		t.Errorf("Get() after overwrite = %q, want v2", got)
	}

	if err := st.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := st.Get(ctx, "k"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrKeyNotFound", err)
	}
}

func TestMemStore_CopiesValue(t *testing.T) {
	ctx := context.Background()
	st := NewMemStore()

	buf := []byte("original")
	if err := st.Put(ctx, "k", buf); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	buf[0] = 'X'

	got, _ := st.Get(ctx, "k")
	if string(got) != "original" {
		t.Errorf("stored value mutated through caller's buffer: %q", got)
	}
}
