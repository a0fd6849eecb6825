package utils

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// getAWSUploader returns a configured S3 uploader
func getAWSUploader(ctx context.Context) (*manager.Uploader, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

// UploadProfilePicture stores an uploaded image in the configured bucket and
// returns its public URL.
func UploadProfilePicture(ctx context.Context, file *multipart.FileHeader) (string, error) {
	uploader, err := getAWSUploader(ctx)
	if err != nil {
		return "", err
	}

	f, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("error opening uploaded file: %w", err)
	}
	defer f.Close()

	bucket := os.Getenv("AWS_BUCKET")
	if bucket == "" {
		bucket = "ecobites"
	}

	// Unique key to prevent overwrites between users uploading the same filename
	key := fmt.Sprintf("profiles/%s-%s", uuid.NewString(), file.Filename)

	result, err := uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        f,
		ACL:         "public-read",
		ContentType: aws.String(file.Header.Get("Content-Type")),
	})
	if err != nil {
		return "", fmt.Errorf("error uploading file: %w", err)
	}

	return result.Location, nil
}
