package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// SignedURLExpiry is how long presigned chart URLs stay valid.
const SignedURLExpiry = 10 * time.Minute

const chartSnapshotPrefix = "charts/violations/"

// S3Repository allows for the server to interface with S3
type S3Repository struct {
	s3_session *s3Session
}

// Snapshot is an uploaded chart and a temporary link to it.
type Snapshot struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SnapshotKey returns a fresh object key for a violation chart in the given format.
func SnapshotKey(format string) string {
	return fmt.Sprintf("%s%s.%s", chartSnapshotPrefix, uuid.NewString(), format)
}

// Writes an object to the S3 bucket from a writer. You can think of an S3 object like a file.
func (s *S3Repository) WriteObjectWriterTo(ctx context.Context, writer io.WriterTo, objectName string, contentType string) error {
	var buf bytes.Buffer

	if _, err := writer.WriteTo(&buf); err != nil {
		return fmt.Errorf("failed to write buffer for %v: %w", objectName, err)
	}

	return s.WriteObjectReader(ctx, bytes.NewReader(buf.Bytes()), objectName, contentType)
}

// Writes an object to the S3 bucket from a reader.
func (s *S3Repository) WriteObjectReader(ctx context.Context, reader io.Reader, objectName string, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.s3_session.bucket),
		Key:    aws.String(objectName),
		Body:   reader,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	_, err := s.s3_session.client.PutObject(ctx, input)
	if err != nil {
		return fmt.Errorf("couldn't upload file %v to %v:%v. Here's why: %w",
			objectName, s.s3_session.bucket, objectName, err)
	}

	return nil
}

// GetSignedUrl responds with a presigned GET URL for the object, valid for SignedURLExpiry.
func (s *S3Repository) GetSignedUrl(ctx context.Context, objectPath string) (string, error) {
	request, err := s.s3_session.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.s3_session.bucket),
		Key:    aws.String(objectPath),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = SignedURLExpiry
	})
	if err != nil {
		return "", fmt.Errorf("couldn't get a presigned request to get %v:%v: %w", s.s3_session.bucket, objectPath, err)
	}

	return request.URL, nil
}

// UploadSnapshot stores a rendered chart under a new key and presigns it.
func (s *S3Repository) UploadSnapshot(ctx context.Context, chart io.WriterTo, format string, contentType string) (*Snapshot, error) {
	key := SnapshotKey(format)
	if err := s.WriteObjectWriterTo(ctx, chart, key, contentType); err != nil {
		return nil, err
	}

	url, err := s.GetSignedUrl(ctx, key)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Key:       key,
		URL:       url,
		ExpiresAt: time.Now().Add(SignedURLExpiry),
	}, nil
}

func (s *S3Repository) Bucket() string {
	return s.s3_session.bucket
}
