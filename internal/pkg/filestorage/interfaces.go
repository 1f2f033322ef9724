package filestorage

import (
	"errors"
	"mime/multipart"
)

// ErrUnsupportedFileType is returned when an upload is not an accepted image
var ErrUnsupportedFileType = errors.New("unsupported file type")

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// SaveFile stores an upload under FileName(fileHeader) and returns that name
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// DeleteFile removes a stored file; a missing file is not an error
	DeleteFile(name string) error

	// GetFullPath returns the filesystem path for a stored file name
	GetFullPath(name string) string
}
