package inventory

import (
	"errors"
	"io/fs"
	"os"
)

// DefaultFile is the stock file path used when the caller supplies none.
const DefaultFile = "inventory.json"

// Load reads the file at path and replaces the entire stock map with its
// contents.
//
// A missing file logs a warning; an unreadable or syntactically invalid file
// logs an error. In every failure case the ledger is reset to empty, never
// left unchanged, and the matching StockError status is reported.
func (l *Ledger) Load(path string) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		l.log.Warn("file not found, starting with empty inventory", "path", path)
		l.reset()
		return &StockError{Kind: ErrFileMissing, Path: path, Err: err}
	}
	if err != nil {
		l.log.Error("could not open inventory file", "path", path, "error", err)
		l.reset()
		return &StockError{Kind: ErrIO, Path: path, Err: err}
	}
	defer f.Close()

	loaded, err := DecodeStock(f)
	if err != nil {
		l.log.Error("error decoding inventory file, starting with empty inventory", "path", path, "error", err)
		l.reset()
		return &StockError{Kind: ErrBadSyntax, Path: path, Err: err}
	}

	l.stock, l.order = loaded.stock, loaded.order
	l.log.Info("data loaded successfully", "path", path, "items", l.Len())
	return nil
}

// Save serializes the full stock map to path, overwriting any existing file.
//
// An I/O failure logs an error and reports an ErrIO status; the ledger state
// is never affected by a save.
func (l *Ledger) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		l.log.Error("error saving inventory file", "path", path, "error", err)
		return &StockError{Kind: ErrIO, Path: path, Err: err}
	}

	if err := EncodeStock(f, l); err != nil {
		f.Close()
		l.log.Error("error saving inventory file", "path", path, "error", err)
		return &StockError{Kind: ErrIO, Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		l.log.Error("error saving inventory file", "path", path, "error", err)
		return &StockError{Kind: ErrIO, Path: path, Err: err}
	}

	l.log.Info("data saved successfully", "path", path, "items", l.Len())
	return nil
}
