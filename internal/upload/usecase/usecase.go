package usecase

import (
	"context"
	"errors"
)

// UploadUsecase defines the interface for the image upload pipeline. Each
// call handles exactly one file, submitted whole; there is no chunking,
// retry or progress reporting.
type UploadUsecase interface {
	// Upload decodes a base64 data URI, stores it in the products folder
	// and returns the object's public URL
	Upload(ctx context.Context, dataURI string) (string, error)

	// Remove deletes a previously uploaded object by its public URL
	Remove(ctx context.Context, url string) error
}

// ObjectStore wraps the remote object storage bucket.
type ObjectStore interface {
	// Write stores the object and returns its public URL
	Write(ctx context.Context, objectName, contentType string, data []byte) (string, error)

	// Delete removes the object
	Delete(ctx context.Context, objectName string) error
}

var (
	ErrBadDataURI = errors.New("file must be a base64 data URI")
	ErrTooLarge   = errors.New("file exceeds the upload size limit")
)
