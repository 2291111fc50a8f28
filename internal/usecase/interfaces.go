package usecase

import (
	"context"
	"io"
)

type FirebaseAuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	SignInWithEmailPassword(email, password string) (string, error)
	SendPasswordReset(ctx context.Context, email string) error
}

type BlobStorage interface {
	Upload(ctx context.Context, path string, file io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, path string) error
	DeletePrefix(ctx context.Context, prefix string) error
}
