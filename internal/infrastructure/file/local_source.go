package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var ErrFileTooLarge = errors.New("file exceeds size limit")

// LocalSource reads import files from the local filesystem. Relative paths resolve against BaseDir.
type LocalSource struct {
	BaseDir  string
	MaxBytes int64
}

func NewLocalSource(baseDir string, maxBytes int64) *LocalSource {
	if baseDir == "" {
		baseDir = "."
	}
	return &LocalSource{BaseDir: baseDir, MaxBytes: maxBytes}
}

func (s *LocalSource) Open(ctx context.Context, sourcePath string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := sourcePath
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.BaseDir, sourcePath)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file %s: %w", path, err)
	}
	return file, nil
}

// ReadFile returns the base name and full contents of sourcePath.
func (s *LocalSource) ReadFile(ctx context.Context, sourcePath string) (string, []byte, error) {
	rc, err := s.Open(ctx, sourcePath)
	if err != nil {
		return "", nil, err
	}
	defer rc.Close()

	var r io.Reader = rc
	if s.MaxBytes > 0 {
		r = io.LimitReader(rc, s.MaxBytes+1)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", nil, fmt.Errorf("read file %s: %w", sourcePath, err)
	}
	if s.MaxBytes > 0 && int64(len(data)) > s.MaxBytes {
		return "", nil, fmt.Errorf("%w: %s", ErrFileTooLarge, sourcePath)
	}

	return filepath.Base(sourcePath), data, nil
}
