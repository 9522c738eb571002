package bank

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// LoadError reports a failure to read or decode a question bank.
type LoadError struct {
	Path string // File path, empty when decoding from a reader
	Op   string // "read" or "decode"
	Err  error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("question bank %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("question bank %s %q failed: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads and decodes the question bank at path.
func Load(path string) (*Bank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Op: "read", Err: err}
	}
	defer f.Close()

	b, err := Decode(f)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
		}
		return nil, err
	}
	return b, nil
}

// Decode decodes a question bank from r.
func Decode(r io.Reader) (*Bank, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadError{Op: "read", Err: err}
	}

	var b Bank
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, &LoadError{Op: "decode", Err: err}
	}
	return &b, nil
}
