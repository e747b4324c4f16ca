package sink

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/dnlrv/scriptlog/core"
)

// FileSink appends formatted lines to a flat file, one line per write,
// newline-terminated, never rewritten or rotated. Writes within the
// process are serialized by a mutex; appenders in other processes must
// coordinate on their own.
type FileSink struct {
	path string
	mu   sync.Mutex
	file *os.File
}

// NewFileSink opens path for appending, creating the file and its
// directory if needed.
func NewFileSink(path string) (*FileSink, error) {
	if path == "" {
		return nil, errors.New("file sink: path is required")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, "file sink: create directory %s", dir)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "file sink: open %s", path)
	}

	return &FileSink{path: path, file: file}, nil
}

// Write appends the line plus a newline
func (s *FileSink) Write(_ *core.Record, line []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return errors.Errorf("file sink: %s is closed", s.path)
	}

	// Single write call so concurrent in-process appenders cannot
	// interleave a line with its newline.
	buf := make([]byte, 0, len(line)+1)
	buf = append(buf, line...)
	buf = append(buf, '\n')

	if _, err := s.file.Write(buf); err != nil {
		return errors.Wrapf(err, "file sink: append to %s", s.path)
	}
	return nil
}

// Close syncs and closes the file
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return nil
	}

	file := s.file
	s.file = nil

	if err := file.Sync(); err != nil {
		_ = file.Close()
		return errors.Wrapf(err, "file sink: sync %s", s.path)
	}
	return errors.Wrapf(file.Close(), "file sink: close %s", s.path)
}
