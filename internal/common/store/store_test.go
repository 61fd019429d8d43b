package store

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestReadMissingKeyReturnsNil(t *testing.T) {
	s := newTestStore(t)

	v, err := s.Read(context.Background(), "never-written")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if v != nil {
		t.Fatalf("expected nil for missing key, got %q", v)
	}
}

func TestWriteReadReplace(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Write(ctx, KeyStudents, []byte(`[{"id":"a"}]`)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	v, err := s.Read(ctx, KeyStudents)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(v) != `[{"id":"a"}]` {
		t.Fatalf("unexpected value: %s", v)
	}

	// 整体替换
	if err := s.Write(ctx, KeyStudents, []byte(`[]`)); err != nil {
		t.Fatalf("Write replace: %v", err)
	}
	v, err = s.Read(ctx, KeyStudents)
	if err != nil {
		t.Fatalf("Read after replace: %v", err)
	}
	if string(v) != `[]` {
		t.Fatalf("expected replaced value, got %s", v)
	}
}

func TestDeleteIsSilentForMissingKey(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Delete(ctx, KeySession); err != nil {
		t.Fatalf("Delete missing: %v", err)
	}

	if err := s.Write(ctx, KeySession, []byte(`{"id":"u1"}`)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := s.Delete(ctx, KeySession); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	v, err := s.Read(ctx, KeySession)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if v != nil {
		t.Fatalf("expected nil after delete, got %s", v)
	}
}

func TestEnsureKeyOnlyWritesWhenAbsent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.EnsureKey(ctx, KeyPayments, []byte(`[]`)); err != nil {
		t.Fatalf("EnsureKey: %v", err)
	}
	if err := s.Write(ctx, KeyPayments, []byte(`[{"id":"p1"}]`)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	// 已有值时不得覆盖
	if err := s.EnsureKey(ctx, KeyPayments, []byte(`[]`)); err != nil {
		t.Fatalf("EnsureKey existing: %v", err)
	}
	v, err := s.Read(ctx, KeyPayments)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(v) != `[{"id":"p1"}]` {
		t.Fatalf("EnsureKey overwrote existing value: %s", v)
	}
}

func TestDurabilityAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reopen.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Write(ctx, KeyVehicles, []byte(`[{"id":"v1"}]`)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()
	v, err := s2.Read(ctx, KeyVehicles)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(v) != `[{"id":"v1"}]` {
		t.Fatalf("value did not survive reopen: %s", v)
	}
}
