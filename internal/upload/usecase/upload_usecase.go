package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// uploadFolder is the fixed folder all product images land in.
const uploadFolder = "products"

var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// uploadUsecase implements UploadUsecase interface
type uploadUsecase struct {
	store    ObjectStore
	maxBytes int64
}

// NewUploadUsecase creates a new instance of uploadUsecase
func NewUploadUsecase(store ObjectStore, maxBytes int64) UploadUsecase {
	return &uploadUsecase{
		store:    store,
		maxBytes: maxBytes,
	}
}

func (u *uploadUsecase) Upload(ctx context.Context, dataURI string) (string, error) {
	contentType, data, err := decodeDataURI(dataURI)
	if err != nil {
		return "", err
	}

	if int64(len(data)) > u.maxBytes {
		return "", ErrTooLarge
	}

	ext, ok := extensions[contentType]
	if !ok {
		ext = ".bin"
	}
	objectName := fmt.Sprintf("%s/%s%s", uploadFolder, uuid.New().String(), ext)

	url, err := u.store.Write(ctx, objectName, contentType, data)
	if err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}
	return url, nil
}

func (u *uploadUsecase) Remove(ctx context.Context, url string) error {
	objectName := url
	if idx := strings.Index(url, uploadFolder+"/"); idx >= 0 {
		objectName = url[idx:]
	}
	if err := u.store.Delete(ctx, objectName); err != nil {
		return fmt.Errorf("failed to delete upload: %w", err)
	}
	return nil
}

// decodeDataURI splits "data:<mediatype>;base64,<payload>" into its content
// type and decoded bytes.
func decodeDataURI(dataURI string) (string, []byte, error) {
	if !strings.HasPrefix(dataURI, "data:") {
		return "", nil, ErrBadDataURI
	}

	header, payload, found := strings.Cut(dataURI[len("data:"):], ",")
	if !found || !strings.HasSuffix(header, ";base64") {
		return "", nil, ErrBadDataURI
	}
	contentType := strings.TrimSuffix(header, ";base64")

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, ErrBadDataURI
	}

	return contentType, data, nil
}
