package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laporin/pkg/errors"
)

func TestUploadAvatar(t *testing.T) {
	ctx := context.Background()
	storage := &fakeBlobStorage{}
	uc := NewUploadUseCase(storage)

	url, err := uc.UploadAvatar(ctx, "user-1", testImage())
	require.NoError(t, err)
	assert.Equal(t, "https://storage.test/user-avatars/user-1", url)

	_, err = uc.UploadAvatar(ctx, "user-1", ImageFile{Reader: strings.NewReader("x"), ContentType: "application/pdf"})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = uc.UploadAvatar(ctx, "user-1", ImageFile{ContentType: "image/png"})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestUploadComplaintImagesSkipsFailures(t *testing.T) {
	ctx := context.Background()
	storage := &fakeBlobStorage{}
	uc := NewUploadUseCase(storage)

	images := []ImageFile{
		testImage(),
		{Reader: strings.NewReader("x"), ContentType: "text/plain"},
		testImage(),
	}

	urls, err := uc.UploadComplaintImages(ctx, "complaint-1", images)
	require.NoError(t, err)
	assert.Len(t, urls, 2)
	for _, url := range urls {
		assert.Contains(t, url, "complaints/complaint-1/")
	}
	// The two valid images keep their original positions in the object names.
	require.Len(t, storage.uploaded, 2)
	assert.True(t, strings.HasSuffix(storage.uploaded[0], "_0"))
	assert.True(t, strings.HasSuffix(storage.uploaded[1], "_2"))
}

func TestUploadComplaintImagesAllFail(t *testing.T) {
	ctx := context.Background()
	storage := &fakeBlobStorage{failAll: true}
	uc := NewUploadUseCase(storage)

	_, err := uc.UploadComplaintImages(ctx, "complaint-1", []ImageFile{testImage(), testImage()})
	assert.True(t, errors.Is(err, "INTERNAL_ERROR"))
}

func TestUploadComplaintImagesValidation(t *testing.T) {
	ctx := context.Background()
	uc := NewUploadUseCase(&fakeBlobStorage{})

	_, err := uc.UploadComplaintImages(ctx, "", []ImageFile{testImage()})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = uc.UploadComplaintImages(ctx, "complaint-1", nil)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestUploadCompletionImage(t *testing.T) {
	ctx := context.Background()
	storage := &fakeBlobStorage{}
	uc := NewUploadUseCase(storage)

	url, err := uc.UploadCompletionImage(ctx, "complaint-1", testImage())
	require.NoError(t, err)
	assert.Contains(t, url, "completions/complaint-1/")

	storage.failAll = true
	_, err = uc.UploadCompletionImage(ctx, "complaint-1", testImage())
	assert.True(t, errors.Is(err, "INTERNAL_ERROR"))
}

func TestCleanupComplaintImages(t *testing.T) {
	ctx := context.Background()
	storage := &fakeBlobStorage{}
	uc := NewUploadUseCase(storage)

	uc.CleanupComplaintImages(ctx, "complaint-1")

	assert.Equal(t, []string{"complaints/complaint-1/", "completions/complaint-1/"}, storage.deletedPrefixes)
}
