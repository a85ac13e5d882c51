package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"blogicum/models"

	"github.com/google/uuid"
)

const postImagesDir = "posts_images"

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// MediaStore keeps uploaded post images. Paths are relative to the media root.
type MediaStore interface {
	Save(file *multipart.FileHeader) (string, error)
	Remove(name string) error
}

type diskMediaStore struct {
	root string
}

func NewDiskMediaStore(root string) MediaStore {
	return &diskMediaStore{root: root}
}

func (m *diskMediaStore) Save(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !imageExtensions[ext] {
		return "", models.NewValidationError("image", "Upload a valid image. Allowed extensions: jpg, jpeg, png, gif, webp")
	}

	name := path.Join(postImagesDir, uuid.NewString()+ext)
	dst := filepath.Join(m.root, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("create media dir: %w", err)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create media file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("store media file: %w", err)
	}
	return name, nil
}

func (m *diskMediaStore) Remove(name string) error {
	if name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(m.root, filepath.FromSlash(path.Clean("/" + name))))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
