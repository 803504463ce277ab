package main

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gogpu/sketch"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// fileLoader resolves reference images on disk. A name is tried as a file
// path first, then as a resource name matching any extension.
type fileLoader struct {
	root string
}

func (l fileLoader) Load(name, dir string) (image.Image, error) {
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(l.root, dir, name)
	}
	img, err := decodeFile(path)
	if !errors.Is(err, fs.ErrNotExist) {
		return img, err
	}

	matches, _ := filepath.Glob(filepath.Join(l.root, dir, sketch.ResourceName(name)+".*"))
	for _, m := range matches {
		if img, err := decodeFile(m); err == nil {
			return img, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", sketch.ErrImageNotFound, name)
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// fileSink writes exports to a file, creating parent directories. The
// format's extension is appended when path has none.
type fileSink struct {
	path string
}

func (s fileSink) Persist(img image.Image, format sketch.Format) (string, error) {
	path := s.path
	if filepath.Ext(path) == "" {
		path += format.Ext()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return "", err
	}
	if err := sketch.Encode(f, img, format); err != nil {
		_ = f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}
