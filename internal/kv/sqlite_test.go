package kv_test

import (
	"context"
	"errors"
	"testing"

	"dairydelight/internal/kv"
)

func memstore(t *testing.T) *kv.SQLiteStore {
	t.Helper()
	s, err := kv.OpenSQLite(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteSetGetDelete(t *testing.T) {
	s := memstore(t)
	ctx := context.Background()

	if err := s.Set(ctx, "cart:abc", `[{"quantity":2}]`); err != nil {
		t.Fatal(err)
	}
	v, err := s.Get(ctx, "cart:abc")
	if err != nil {
		t.Fatal(err)
	}
	if v != `[{"quantity":2}]` {
		t.Fatalf("roundtrip mismatch: %q", v)
	}

	// overwrite
	if err := s.Set(ctx, "cart:abc", `[]`); err != nil {
		t.Fatal(err)
	}
	v, _ = s.Get(ctx, "cart:abc")
	if v != `[]` {
		t.Fatalf("overwrite mismatch: %q", v)
	}

	if err := s.Delete(ctx, "cart:abc"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Get(ctx, "cart:abc"); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("want ErrNotFound after delete, got %v", err)
	}
}

func TestSQLiteMissingKey(t *testing.T) {
	s := memstore(t)
	if _, err := s.Get(context.Background(), "nope"); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestSQLiteDeleteMissingKeyIsNoop(t *testing.T) {
	s := memstore(t)
	if err := s.Delete(context.Background(), "nope"); err != nil {
		t.Fatalf("delete of missing key must not fail: %v", err)
	}
}
