package filestorage

import (
	"bytes"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"
)

func newFileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("image_path", name)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("ReadForm: %v", err)
	}
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["image_path"][0]
}

func TestSaveAndDeleteFile(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, "/public")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	name, err := storage.SaveFile(newFileHeader(t, "a320 neo.png", []byte("png-bytes")))
	if err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	if name != "a320_neo.png" {
		t.Errorf("expected a320_neo.png, got %q", name)
	}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil || string(data) != "png-bytes" {
		t.Fatalf("expected the upload on disk, got %q, %v", data, err)
	}
	if got := storage.URL(name); got != "/public/a320_neo.png" {
		t.Errorf("unexpected url %q", got)
	}

	if err := storage.DeleteFile(name); err != nil {
		t.Fatalf("DeleteFile: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
		t.Errorf("expected the file to be removed, stat returned %v", err)
	}
	if err := storage.DeleteFile(name); err != nil {
		t.Errorf("deleting a missing file should succeed, got %v", err)
	}
}

func TestSaveFileRejectsNonImages(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "/public")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	_, err = storage.SaveFile(newFileHeader(t, "notes.txt", []byte("hello")))
	if !errors.Is(err, ErrUnsupportedFileType) {
		t.Errorf("expected ErrUnsupportedFileType, got %v", err)
	}
}

func TestGetFullPathStaysInBaseDir(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, "/public")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	if got := storage.GetFullPath("../../etc/passwd"); got != filepath.Join(dir, "passwd") {
		t.Errorf("expected the path to be confined to %s, got %s", dir, got)
	}
	if got := storage.GetFullPath(".."); got != "" {
		t.Errorf("expected an empty path for .., got %s", got)
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plane.png", "plane.png"},
		{"dir/sub/plane.png", "plane.png"},
		{`C:\Users\me\plane.png`, "plane.png"},
		{" big plane.jpg ", "big_plane.jpg"},
	}
	for _, tt := range tests {
		if got := FileName(&multipart.FileHeader{Filename: tt.in}); got != tt.want {
			t.Errorf("FileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if got := FileName(nil); got != "" {
		t.Errorf("FileName(nil) = %q", got)
	}
}
