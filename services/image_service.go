package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

var (
	ErrNotAnImage        = errors.New("not_an_image")
	ErrInvalidUploadPath = errors.New("invalid_upload_path")
)

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// uploadSubdirs is the closed set of destinations under uploads/.
var uploadSubdirs = map[string]bool{
	"boats":    true,
	"articles": true,
	"services": true,
	"settings": true,
	"misc":     true,
}

// resolveUploadSubdir validates the caller-supplied path hint against the
// allowed destinations. Anything outside the set (traversal attempts
// included) is rejected; empty means "misc".
func resolveUploadSubdir(subdir string) (string, error) {
	if subdir == "" {
		return "misc", nil
	}
	if !uploadSubdirs[subdir] {
		return "", ErrInvalidUploadPath
	}
	return subdir, nil
}

// SaveUploadedImage stores a multipart upload under uploads/<subdir> and
// returns the public path ("/uploads/<subdir>/<name>"). subdir must be one
// of boats, articles, services, settings (empty means misc); the only
// content validation is an image MIME sniff on the first bytes.
func SaveUploadedImage(file *multipart.FileHeader, subdir string) (string, error) {
	subdir, err := resolveUploadSubdir(subdir)
	if err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	head := make([]byte, 512)
	n, err := src.Read(head)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read upload: %w", err)
	}
	contentType := http.DetectContentType(head[:n])
	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", ErrNotAnImage
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind upload: %w", err)
	}

	dir := filepath.Join("uploads", subdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("mkdir uploads dir: %w", err)
	}

	filename := uuid.NewString() + ext
	fullpath := filepath.Join(dir, filename)

	dst, err := os.Create(fullpath)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return "/" + filepath.ToSlash(fullpath), nil
}
