package media

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

var ErrNotAnImage = errors.New("uploaded file is not an image")

// Image is an uploaded artwork picture stored on local disk.
type Image struct {
	ID           string `json:"id"`
	OriginalPath string `json:"original_path"`
	ContentType  string `json:"content_type"`
	Size         int64  `json:"size"`
}

// URL is the public path the storefront serves the file under.
func (i Image) URL() string {
	return "/media/" + filepath.Base(i.OriginalPath)
}

// Store writes uploads into Dir.
type Store struct {
	Dir string
}

// Save sniffs the content type, rejects anything that is not image/*, and
// writes the bytes under a fresh UUID file name.
func (s Store) Save(r io.Reader) (Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Image{}, fmt.Errorf("read upload: %w", err)
	}
	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return Image{}, ErrNotAnImage
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return Image{}, fmt.Errorf("create media dir: %w", err)
	}

	id := uuid.NewString()
	path := filepath.Join(s.Dir, id+mt.Extension())
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return Image{}, fmt.Errorf("write upload: %w", err)
	}
	return Image{
		ID:           id,
		OriginalPath: path,
		ContentType:  mt.String(),
		Size:         int64(len(data)),
	}, nil
}

// Remove deletes a saved upload that ended up unused.
func (s Store) Remove(img Image) {
	_ = os.Remove(img.OriginalPath)
}
