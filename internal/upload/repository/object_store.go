package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"

	"handoff-backend/internal/upload/usecase"
)

// objectStore implements usecase.ObjectStore on a Cloud Storage bucket.
// Uploaded objects are publicly readable and addressed by their canonical
// storage URL.
type objectStore struct {
	bucket     *storage.BucketHandle
	bucketName string
}

// NewObjectStore creates a new instance of objectStore
func NewObjectStore(bucket *storage.BucketHandle, bucketName string) usecase.ObjectStore {
	return &objectStore{
		bucket:     bucket,
		bucketName: bucketName,
	}
}

func (s *objectStore) Write(ctx context.Context, objectName, contentType string, data []byte) (string, error) {
	writer := s.bucket.Object(objectName).NewWriter(ctx)
	writer.ContentType = contentType
	writer.PredefinedACL = "publicRead"

	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return "", fmt.Errorf("failed to write object %s: %w", objectName, err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finish object %s: %w", objectName, err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucketName, objectName), nil
}

func (s *objectStore) Delete(ctx context.Context, objectName string) error {
	if err := s.bucket.Object(objectName).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete object %s: %w", objectName, err)
	}
	return nil
}
