package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"laporin/pkg/errors"
	"laporin/pkg/logger"
)

// ImageFile is an image handed in by a client, ready to stream to the blob
// store.
type ImageFile struct {
	Reader      io.Reader
	ContentType string
}

func (f ImageFile) valid() bool {
	if f.Reader == nil {
		return false
	}
	switch f.ContentType {
	case "image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp":
		return true
	default:
		return false
	}
}

type UploadUseCase struct {
	storage BlobStorage
}

func NewUploadUseCase(storage BlobStorage) *UploadUseCase {
	return &UploadUseCase{
		storage: storage,
	}
}

func (uc *UploadUseCase) UploadAvatar(ctx context.Context, userID string, image ImageFile) (string, error) {
	if !image.valid() {
		return "", errors.BadRequest("A valid image file is required", nil)
	}

	path := fmt.Sprintf("user-avatars/%s", userID)
	url, err := uc.storage.Upload(ctx, path, image.Reader, image.ContentType)
	if err != nil {
		return "", errors.Internal("Failed to upload avatar", err)
	}

	return url, nil
}

// UploadComplaintImages uploads each image under the complaint's folder.
// Uploads that fail are dropped from the returned URL list; the call only
// fails as a whole when not a single image made it.
func (uc *UploadUseCase) UploadComplaintImages(ctx context.Context, complaintID string, images []ImageFile) ([]string, error) {
	if complaintID == "" {
		return nil, errors.BadRequest("Complaint ID is required", nil)
	}
	if len(images) == 0 {
		return nil, errors.BadRequest("No images to upload", nil)
	}

	timestamp := time.Now().UnixMilli()
	var urls []string

	for i, image := range images {
		if !image.valid() {
			logger.Warn("Skipping invalid complaint image at index %d", i)
			continue
		}

		path := fmt.Sprintf("complaints/%s/%d_%d", complaintID, timestamp, i)
		url, err := uc.storage.Upload(ctx, path, image.Reader, image.ContentType)
		if err != nil {
			logger.Warn("Failed to upload complaint image %s: %v", path, err)
			continue
		}
		urls = append(urls, url)
	}

	if len(urls) == 0 {
		return nil, errors.Internal("All image uploads failed", nil)
	}

	return urls, nil
}

func (uc *UploadUseCase) UploadCompletionImage(ctx context.Context, complaintID string, image ImageFile) (string, error) {
	if !image.valid() {
		return "", errors.BadRequest("A valid image file is required", nil)
	}

	path := fmt.Sprintf("completions/%s/%d", complaintID, time.Now().UnixMilli())
	url, err := uc.storage.Upload(ctx, path, image.Reader, image.ContentType)
	if err != nil {
		return "", errors.Internal("Failed to upload completion image", err)
	}

	return url, nil
}

// CleanupComplaintImages removes every stored object for a deleted complaint.
// Best-effort: the complaint document is already gone, so failures are only
// logged.
func (uc *UploadUseCase) CleanupComplaintImages(ctx context.Context, complaintID string) {
	for _, prefix := range []string{
		fmt.Sprintf("complaints/%s/", complaintID),
		fmt.Sprintf("completions/%s/", complaintID),
	} {
		if err := uc.storage.DeletePrefix(ctx, prefix); err != nil {
			logger.Warn("Failed to clean up images under %s: %v", prefix, err)
		}
	}
}
