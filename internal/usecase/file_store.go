package usecase

import "io"

// FileStore is the object-store surface the usecases need. *s3.Client
// satisfies it.
type FileStore interface {
	UploadFile(key string, file io.Reader, contentType string) (string, error)
	ReplaceFile(key string, file io.Reader, contentType string) (string, error)
	DeleteFile(key string) error
	PublicURL(key string) string
}
