package sarif

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	// ErrTrailingData is returned when bytes follow the top-level JSON value.
	ErrTrailingData = errors.New("trailing data after sarif document")
	// ErrNotObject is returned when the top-level JSON value is not an object.
	ErrNotObject = errors.New("sarif document is not a JSON object")
)

// Document is a decoded SARIF log. Numbers are kept as json.Number so that
// integers such as line numbers keep their literal text.
type Document struct {
	root map[string]any
}

// ReadFile parses a SARIF file from disk.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sarif file: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// ReadBytes parses SARIF from a byte slice.
func ReadBytes(data []byte) (*Document, error) {
	return Read(bytes.NewReader(data))
}

// Read parses SARIF from an io.Reader. The schema is not validated; only
// JSON well-formedness and an object at the top level are required.
func Read(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("decode sarif: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode sarif: %w", ErrTrailingData)
	}

	obj, ok := root.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("decode sarif: %w", ErrNotObject)
	}

	return &Document{root: obj}, nil
}

// Version returns the declared SARIF version, or "" if absent.
func (d *Document) Version() string {
	return LookupString(d.root, "", "version")
}

// ToolName returns the driver name of the first run, or "" if absent.
func (d *Document) ToolName() string {
	return LookupString(d.root, "", "runs", 0, "tool", "driver", "name")
}

// RunCount returns the number of runs in the document.
func (d *Document) RunCount() int {
	runs, _ := Lookup(d.root, "runs")
	list, _ := runs.([]any)
	return len(list)
}

// Results returns the raw results of the first run. Later runs are ignored.
func (d *Document) Results() []any {
	results, _ := Lookup(d.root, "runs", 0, "results")
	list, _ := results.([]any)
	return list
}
