package hostcache

import (
	"path/filepath"
	"testing"

	"github.com/riseshia/rbtypegraph/internal/registry"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cache.db")
	c, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestWasDanglingMissesBeforeAnyRecord(t *testing.T) {
	c := openTestCache(t)
	dangling, err := c.WasDangling("Point", "x", false)
	if err != nil {
		t.Fatalf("WasDangling() error = %v", err)
	}
	if dangling {
		t.Error("WasDangling() on an empty cache should be false")
	}
}

func TestRecordDanglingThenWasDanglingRoundTrips(t *testing.T) {
	c := openTestCache(t)
	methods := []*registry.Method{
		{ReceiverName: "Point", Name: "x", Singleton: false, Paths: []string{"point.rb"}},
		{ReceiverName: "Point", Name: "hello", Singleton: true, Paths: nil},
	}
	if err := c.RecordDangling(methods); err != nil {
		t.Fatalf("RecordDangling() error = %v", err)
	}

	dangling, err := c.WasDangling("Point", "x", false)
	if err != nil {
		t.Fatalf("WasDangling() error = %v", err)
	}
	if !dangling {
		t.Error("WasDangling(Point, x, false) should be true after RecordDangling")
	}

	if dangling, err := c.WasDangling("Point", "x", true); err != nil || dangling {
		t.Errorf("WasDangling(Point, x, true) = %v, %v, want false, nil (singleton flag distinguishes identity)", dangling, err)
	}
}

func TestRecordDanglingReplacesThePreviousSet(t *testing.T) {
	c := openTestCache(t)
	if err := c.RecordDangling([]*registry.Method{{ReceiverName: "A", Name: "old", Paths: nil}}); err != nil {
		t.Fatalf("RecordDangling() error = %v", err)
	}
	if err := c.RecordDangling([]*registry.Method{{ReceiverName: "A", Name: "new", Paths: nil}}); err != nil {
		t.Fatalf("RecordDangling() error = %v", err)
	}

	if dangling, _ := c.WasDangling("A", "old", false); dangling {
		t.Error("WasDangling(A, old) should be false after a later RecordDangling dropped it")
	}
	if dangling, _ := c.WasDangling("A", "new", false); !dangling {
		t.Error("WasDangling(A, new) should be true after the latest RecordDangling")
	}
}
