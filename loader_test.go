package inventory

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoad_MissingFile(t *testing.T) {
	log := &recorder{}
	ledger := NewLedger(log)
	ledger.Add("apple", 10)

	path := filepath.Join(t.TempDir(), "inventory.json")
	err := ledger.Load(path)

	if !IsKind(err, ErrFileMissing) {
		t.Fatalf("Load(%q) = %v, want a %v status", path, err, ErrFileMissing)
	}
	// The ledger is reset to empty, not left unchanged.
	if ledger.Len() != 0 {
		t.Errorf("ledger holds %d items after a failed load, want 0", ledger.Len())
	}
	if log.count("warn") != 1 {
		t.Errorf("missing file logged %d warnings, want 1", log.count("warn"))
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	log := &recorder{}
	ledger := NewLedger(log)
	ledger.Add("apple", 10)

	err := ledger.Load(path)

	if !IsKind(err, ErrBadSyntax) {
		t.Fatalf("Load(%q) = %v, want a %v status", path, err, ErrBadSyntax)
	}
	if ledger.Len() != 0 {
		t.Errorf("ledger holds %d items after a failed load, want 0", ledger.Len())
	}
	if log.count("error") != 1 {
		t.Errorf("invalid JSON logged %d errors, want 1", log.count("error"))
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")

	saved := NewLedger(nil)
	saved.Add("cherry", 12)
	saved.Add("apple", 7)
	saved.Add("banana", 2)
	if err := saved.Save(path); err != nil {
		t.Fatalf("Save(%q) returned an unexpected error: %v", path, err)
	}

	loaded := NewLedger(nil)
	if err := loaded.Load(path); err != nil {
		t.Fatalf("Load(%q) returned an unexpected error: %v", path, err)
	}

	if !reflect.DeepEqual(loaded.order, saved.order) {
		t.Errorf("round-trip changed the order: got %v, want %v", loaded.order, saved.order)
	}
	for item, qty := range saved.Items() {
		if got := loaded.Quantity(item); !got.Equal(qty) {
			t.Errorf("round-trip changed %q: got %s, want %s", item, got, qty)
		}
	}
}

func TestSave_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")
	if err := os.WriteFile(path, []byte(`{"stale": 99}`), 0644); err != nil {
		t.Fatal(err)
	}

	ledger := NewLedger(nil)
	ledger.Add("apple", 7)
	if err := ledger.Save(path); err != nil {
		t.Fatalf("Save(%q) returned an unexpected error: %v", path, err)
	}

	loaded := NewLedger(nil)
	if err := loaded.Load(path); err != nil {
		t.Fatalf("Load(%q) returned an unexpected error: %v", path, err)
	}
	if got := loaded.Quantity("stale"); !got.IsZero() {
		t.Errorf("stale entry survived the save: %s", got)
	}
}

func TestSave_IOFailure(t *testing.T) {
	// A path inside a directory that does not exist cannot be created.
	path := filepath.Join(t.TempDir(), "no-such-dir", "inventory.json")

	log := &recorder{}
	ledger := NewLedger(log)
	ledger.Add("apple", 7)

	err := ledger.Save(path)

	if !IsKind(err, ErrIO) {
		t.Fatalf("Save(%q) = %v, want an %v status", path, err, ErrIO)
	}
	// A failed save never affects the ledger state.
	if got := ledger.Quantity("apple"); !got.Equal(Q(7)) {
		t.Errorf("failed save mutated the ledger: apple = %s", got)
	}
	if log.count("error") != 1 {
		t.Errorf("failed save logged %d errors, want 1", log.count("error"))
	}
}

func TestLoad_Success_Logs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")
	if err := os.WriteFile(path, []byte(`{"apple": 7}`), 0644); err != nil {
		t.Fatal(err)
	}

	log := &recorder{}
	ledger := NewLedger(log)
	if err := ledger.Load(path); err != nil {
		t.Fatalf("Load(%q) returned an unexpected error: %v", path, err)
	}
	if log.count("info") != 1 {
		t.Errorf("successful load logged %d info records, want 1", log.count("info"))
	}
}
