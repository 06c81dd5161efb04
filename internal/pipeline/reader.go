package pipeline

import (
	"fmt"
	"io"
	"os"

	"github.com/FellOffFuji/vmdlpoints/internal/model"
)

// Reader reads vmdl documents from disk
type Reader struct {
	maxBytes int64
}

// NewReader creates a new Reader with the given read limit
func NewReader(maxBytes int64) *Reader {
	if maxBytes <= 0 {
		maxBytes = 16 << 20
	}
	return &Reader{maxBytes: maxBytes}
}

// Source contains a document's full text and its file identity
type Source struct {
	Text string
	Meta model.FileMeta
}

// Read loads the document at path. Any failure here is fatal for the run:
// nothing is partially applied. The file handle is released on all paths.
func (r *Reader) Read(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat document: %w", err)
	}

	// Read one byte past the limit: truncating silently could cut a block
	// mid-way and drop attachments, so an oversized document is a read error.
	body, err := io.ReadAll(io.LimitReader(f, r.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	if int64(len(body)) > r.maxBytes {
		return nil, fmt.Errorf("document exceeds %d byte limit", r.maxBytes)
	}

	return &Source{
		Text: string(body),
		Meta: model.FileMeta{
			Size:    info.Size(),
			ModTime: info.ModTime(),
		},
	}, nil
}
