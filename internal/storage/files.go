package storage

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrUnsupportedType rejects anything that is not a jpg/jpeg/png/gif.
var ErrUnsupportedType = errors.New("only JPEG, JPG, PNG and GIF images are allowed")

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// FileStore writes uploaded images under a public static directory.
// The returned paths are relative URLs ("/uploads/posts/...") stored
// on the owning record.
type FileStore struct {
	baseDir string
}

func NewFileStore(baseDir string) *FileStore {
	return &FileStore{baseDir: baseDir}
}

// SaveImage persists an uploaded image under uploads/<category> with a
// collision-resistant name and returns its public relative path.
func (s *FileStore) SaveImage(file multipart.File, header *multipart.FileHeader, category string) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		return "", ErrUnsupportedType
	}

	dir := filepath.Join(s.baseDir, "uploads", category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating upload dir: %w", err)
	}

	name := fmt.Sprintf("%s-%d-%d%s", category, time.Now().UnixMilli(), rand.Intn(1_000_000_000), ext)

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("creating upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("writing upload: %w", err)
	}

	return "/uploads/" + category + "/" + name, nil
}
