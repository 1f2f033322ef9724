package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/yigit/airport/internal/pkg/logger"
)

// imageExtensions lists the uploads accepted as airplane model pictures
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath string // The public directory files are written to
	baseURL  string // The URL prefix the public directory is served under
}

// NewLocalStorage creates a new LocalStorage instance.
// basePath is created when missing. baseURL is only used by URL.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

// FileName returns the name an upload is stored under: the base of the
// client's file name with spaces replaced. Models reference their picture
// by this name, so two uploads with the same name collide on purpose.
func FileName(fileHeader *multipart.FileHeader) string {
	if fileHeader == nil {
		return ""
	}
	name := filepath.Base(strings.ReplaceAll(fileHeader.Filename, "\\", "/"))
	if name == "." || name == "/" {
		return ""
	}
	return strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
}

// SaveFile writes an uploaded image into the public directory
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	name := FileName(fileHeader)
	if name == "" {
		return "", fmt.Errorf("%w: missing file name", ErrUnsupportedFileType)
	}
	if !imageExtensions[strings.ToLower(filepath.Ext(name))] {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, filepath.Ext(name))
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	dstPath := filepath.Join(ls.basePath, name)
	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	logger.Info().Str("filename", name).Int64("size", fileHeader.Size).Msg("File saved successfully")
	return name, nil
}

// DeleteFile removes a file from the public directory.
// Returns nil if deletion is successful or if the file doesn't exist.
func (ls *LocalStorage) DeleteFile(name string) error {
	if name == "" {
		return nil
	}

	physicalPath := ls.GetFullPath(name)
	if physicalPath == "" {
		return fmt.Errorf("invalid file name: %s", name)
	}

	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("File deleted successfully")
	return nil
}

// GetFullPath returns the filesystem path of a stored file.
// Only the base name is used so callers cannot escape the directory.
func (ls *LocalStorage) GetFullPath(name string) string {
	filename := filepath.Base(name)
	if filename == "" || filename == "." || filename == "/" || filename == ".." {
		return ""
	}
	return filepath.Join(ls.basePath, filename)
}

// URL returns the public address of a stored file
func (ls *LocalStorage) URL(name string) string {
	return strings.TrimRight(ls.baseURL, "/") + "/" + filepath.Base(name)
}
