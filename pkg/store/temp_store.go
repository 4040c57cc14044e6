package store

import (
	"path/filepath"
	"testing"

	. "src.pless.dev/pkg/store/storedefs"
)

// MustGetTempStore returns a Store backed by a file in a temporary directory.
// The store is closed when the test finishes.
func MustGetTempStore(t testing.TB) Store {
	t.Helper()
	st, err := NewStore(filepath.Join(t.TempDir(), "props.db"))
	if err != nil {
		t.Fatalf("failed to create Store instance: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}
