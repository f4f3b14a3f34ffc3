package draft

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"draftscan/internal/jsontree"
)

// DefaultFileName is the project document name the editor writes.
const DefaultFileName = "draft_content.json"

// ErrNotFound reports a missing draft document.
var ErrNotFound = errors.New("draft not found")

// ParseError wraps a decode failure for a draft document.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse draft %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads and decodes the draft document at path. Directories count as
// missing documents.
func Load(path string) (*jsontree.Node, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("stat draft %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open draft %s: %w", path, err)
	}
	defer file.Close()

	root, err := jsontree.Decode(bufio.NewReader(file))
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return root, nil
}
