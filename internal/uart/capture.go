package uart

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// maxCaptureIndex bounds the search for an unused capture file name.
const maxCaptureIndex = 10000

type captureSink struct {
	path    string
	file    *os.File
	written int64
}

// openCaptureSink creates <root>/<folder>/<prefix>_<n>.<ext> using the first
// unused n.
func openCaptureSink(root, prefix, ext, folder string) (*captureSink, error) {
	if prefix == "" || ext == "" || folder == "" {
		return nil, fmt.Errorf("capture sink needs prefix, extension and folder")
	}
	dir := filepath.Join(root, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create capture folder: %w", err)
	}
	for n := 0; n < maxCaptureIndex; n++ {
		path := filepath.Join(dir, fmt.Sprintf("%s_%d.%s", prefix, n, ext))
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("create capture file: %w", err)
		}
		return &captureSink{path: path, file: f}, nil
	}
	return nil, fmt.Errorf("no free capture name for %s in %s", prefix, dir)
}

func (s *captureSink) Write(b []byte) (int, error) {
	n, err := s.file.Write(b)
	s.written += int64(n)
	return n, err
}

func (s *captureSink) Close() error {
	return s.file.Close()
}
