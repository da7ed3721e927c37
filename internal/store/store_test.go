package store

import (
	"errors"
	"path/filepath"
	"testing"
)

func openBackends(t *testing.T) map[string]KV {
	t.Helper()

	backends := map[string]KV{}
	for _, driver := range Drivers {
		path := filepath.Join(t.TempDir(), "nested", "spend.db")
		kv, err := Open(driver, path)
		if err != nil {
			t.Fatalf("open %s: %v", driver, err)
		}
		t.Cleanup(func() { kv.Close() })
		backends[driver] = kv
	}
	return backends
}

func TestKV_GetSetDelete(t *testing.T) {
	for driver, kv := range openBackends(t) {
		t.Run(driver, func(t *testing.T) {
			if _, err := kv.Get("missing"); !errors.Is(err, ErrKeyNotFound) {
				t.Fatalf("expected ErrKeyNotFound, got %v", err)
			}

			if err := kv.Set("a", `["x"]`); err != nil {
				t.Fatalf("set: %v", err)
			}
			if err := kv.Set("a", `["x","y"]`); err != nil {
				t.Fatalf("overwrite: %v", err)
			}
			if err := kv.Set("b", `[]`); err != nil {
				t.Fatalf("set b: %v", err)
			}

			got, err := kv.Get("a")
			if err != nil || got != `["x","y"]` {
				t.Fatalf("unexpected value %q (err=%v)", got, err)
			}

			if err := kv.Delete("a", "b", "never-set"); err != nil {
				t.Fatalf("delete: %v", err)
			}
			for _, k := range []string{"a", "b"} {
				if _, err := kv.Get(k); !errors.Is(err, ErrKeyNotFound) {
					t.Fatalf("%s should be gone, got %v", k, err)
				}
			}
		})
	}
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	for _, driver := range []string{DriverSQLite3, DriverSQLite} {
		t.Run(driver, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "spend.db")

			first, err := NewSQLite(path, driver)
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			if err := first.Set("k", "v"); err != nil {
				t.Fatalf("set: %v", err)
			}
			if err := first.Close(); err != nil {
				t.Fatalf("close: %v", err)
			}

			second, err := NewSQLite(path, driver)
			if err != nil {
				t.Fatalf("reopen: %v", err)
			}
			defer second.Close()

			got, err := second.Get("k")
			if err != nil || got != "v" {
				t.Fatalf("expected persisted value, got %q (err=%v)", got, err)
			}
			if second.Driver() != driver {
				t.Fatalf("unexpected driver %q", second.Driver())
			}
		})
	}
}

func TestMemory_ClosedStoreFails(t *testing.T) {
	m := NewMemory()
	if err := m.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := m.Set("k", "v"); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
	if _, err := m.Get("k"); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	if _, err := Open("postgres", "x"); !errors.Is(err, ErrUnsupportedDriver) {
		t.Fatalf("expected ErrUnsupportedDriver, got %v", err)
	}
}
