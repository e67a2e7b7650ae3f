package storage

import (
	"context"
	"fmt"
	"log"
	"os"

	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// Uploader is the media-upload collaborator: raw image bytes in, stable
// public URL out.
type Uploader interface {
	Upload(ctx context.Context, data []byte, contentType string) (string, error)
}

// BucketUploader stores images in the Cloud Storage bucket attached to the
// project's Firebase app.
type BucketUploader struct {
	bucket     *gcs.BucketHandle
	bucketName string
}

// InitStorage initializes the Firebase application and its storage bucket
func InitStorage(ctx context.Context, credentialsPath, bucketName string) (*BucketUploader, error) {
	if credentialsPath == "" {
		return nil, fmt.Errorf("Firebase credentials path not provided")
	}
	if bucketName == "" {
		return nil, fmt.Errorf("storage bucket name not provided")
	}

	// Check if the credentials file exists
	if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("Firebase credentials file not found at %s", credentialsPath)
	}

	opt := option.WithCredentialsFile(credentialsPath)

	firebaseApp, err := firebase.NewApp(ctx, &firebase.Config{StorageBucket: bucketName}, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}

	storageClient, err := firebaseApp.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting storage client: %w", err)
	}

	bucket, err := storageClient.DefaultBucket()
	if err != nil {
		return nil, fmt.Errorf("error getting default bucket: %w", err)
	}

	log.Println("Firebase app and storage bucket initialized successfully!")
	return &BucketUploader{bucket: bucket, bucketName: bucketName}, nil
}

// Upload writes the image under posts/ with a random object name and returns
// its public URL.
func (u *BucketUploader) Upload(ctx context.Context, data []byte, contentType string) (string, error) {
	name := "posts/" + uuid.NewString()

	w := u.bucket.Object(name).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		w.Close()
		return "", fmt.Errorf("writing object %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("closing object %s: %w", name, err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", u.bucketName, name), nil
}
