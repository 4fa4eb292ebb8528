package services

import (
	"bytes"
	"errors"
	"mime/multipart"
	"os"
	"strings"
	"testing"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}

// chdir replaces testing.T.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})
}

func uploadHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close form: %v", err)
	}

	form, err := multipart.NewReader(&buf, mw.Boundary()).ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["image"][0]
}

func TestSaveUploadedImageRejectsEscapingSubdirs(t *testing.T) {
	chdir(t, t.TempDir())
	file := uploadHeader(t, "photo.png", pngMagic)

	for _, subdir := range []string{"..", "../outside", "boats/../../outside", "/etc", "boats/deep"} {
		_, err := SaveUploadedImage(file, subdir)
		if !errors.Is(err, ErrInvalidUploadPath) {
			t.Errorf("subdir %q: err = %v; want ErrInvalidUploadPath", subdir, err)
		}
	}

	if _, err := os.Stat("outside"); !os.IsNotExist(err) {
		t.Errorf("a rejected subdir still created a directory outside uploads/")
	}
}

func TestSaveUploadedImageAllowedSubdir(t *testing.T) {
	chdir(t, t.TempDir())
	file := uploadHeader(t, "photo.png", pngMagic)

	url, err := SaveUploadedImage(file, "boats")
	if err != nil {
		t.Fatalf("SaveUploadedImage: %v", err)
	}
	if !strings.HasPrefix(url, "/uploads/boats/") {
		t.Fatalf("url = %q; want /uploads/boats/ prefix", url)
	}
	if !strings.HasSuffix(url, ".png") {
		t.Errorf("url = %q; want .png extension from sniffed type", url)
	}
	if _, err := os.Stat(strings.TrimPrefix(url, "/")); err != nil {
		t.Errorf("stored file missing at %q: %v", strings.TrimPrefix(url, "/"), err)
	}
}

func TestSaveUploadedImageEmptySubdirDefaultsToMisc(t *testing.T) {
	chdir(t, t.TempDir())
	file := uploadHeader(t, "photo.png", pngMagic)

	url, err := SaveUploadedImage(file, "")
	if err != nil {
		t.Fatalf("SaveUploadedImage: %v", err)
	}
	if !strings.HasPrefix(url, "/uploads/misc/") {
		t.Errorf("url = %q; want /uploads/misc/ prefix", url)
	}
}

func TestSaveUploadedImageRejectsNonImage(t *testing.T) {
	chdir(t, t.TempDir())
	file := uploadHeader(t, "notes.txt", []byte("solo testo, niente immagine"))

	if _, err := SaveUploadedImage(file, "boats"); !errors.Is(err, ErrNotAnImage) {
		t.Fatalf("err = %v; want ErrNotAnImage", err)
	}
}
