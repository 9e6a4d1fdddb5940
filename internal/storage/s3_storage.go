package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Storage is the object store sink for rendered composites and the signer
// for download/upload URLs. One instance is created at startup and shared by
// all requests; the underlying client is safe for concurrent use.
type S3Storage struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// StoredObject describes a rendered image persisted to the bucket.
type StoredObject struct {
	URL      string `json:"url"`
	Key      string `json:"key"`
	Filename string `json:"filename"`
}

type PresignedURLResponse struct {
	UploadURL string `json:"upload_url"`
	FileURL   string `json:"file_url"`
	Key       string `json:"key"`
}

func NewS3Storage(region, bucket, accessKeyID, secretAccessKey, baseURL string) *S3Storage {
	var cfg aws.Config
	var err error

	// If credentials are provided, use them. Otherwise, use default credential chain
	if accessKeyID != "" && secretAccessKey != "" {
		cfg = aws.Config{
			Region: region,
			Credentials: credentials.NewStaticCredentialsProvider(
				accessKeyID,
				secretAccessKey,
				"",
			),
		}
	} else {
		cfg, err = config.LoadDefaultConfig(context.TODO(),
			config.WithRegion(region),
		)
		if err != nil {
			cfg = aws.Config{Region: region}
		}
	}

	return &S3Storage{
		client:  s3.NewFromConfig(cfg),
		bucket:  bucket,
		baseURL: baseURL,
	}
}

// StoreRender uploads rendered image bytes under renders/<uuid>.<ext> and
// returns the public URL of the object.
func (s *S3Storage) StoreRender(ctx context.Context, ext, contentType string, body []byte) (*StoredObject, error) {
	filename := fmt.Sprintf("%s.%s", uuid.New().String(), ext)
	key := "renders/" + filename

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload render: %w", err)
	}

	return &StoredObject{
		URL:      s.objectURL(key),
		Key:      key,
		Filename: filename,
	}, nil
}

// PresignGet signs a time-limited GET URL for an object in this bucket. The
// input may be either an object key or a full object URL; the key is
// extracted from the URL path.
func (s *S3Storage) PresignGet(ctx context.Context, objectURLOrKey string, expiry time.Duration) (string, error) {
	key, err := s.objectKey(objectURLOrKey)
	if err != nil {
		return "", err
	}

	presignClient := s3.NewPresignClient(s.client)
	presignedReq, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign GET: %w", err)
	}
	return presignedReq.URL, nil
}

// GeneratePresignedUpload signs a PUT URL so the admin can upload catalog
// artwork (shape SVGs, overlay images) directly to the bucket.
func (s *S3Storage) GeneratePresignedUpload(ctx context.Context, filename, contentType, folder string) (*PresignedURLResponse, error) {
	ext := filepath.Ext(filename)
	key := fmt.Sprintf("%s/%s%s", folder, uuid.New().String(), ext)

	presignClient := s3.NewPresignClient(s.client)
	presignedReq, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return nil, fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return &PresignedURLResponse{
		UploadURL: presignedReq.URL,
		FileURL:   s.objectURL(key),
		Key:       key,
	}, nil
}

// ValidateContentType validates the content type against an allow list.
func (s *S3Storage) ValidateContentType(contentType string, allowedTypes []string) error {
	for _, allowed := range allowedTypes {
		if contentType == allowed {
			return nil
		}
	}
	return fmt.Errorf("content type %s is not allowed", contentType)
}

func (s *S3Storage) objectURL(key string) string {
	if s.baseURL != "" {
		// CloudFront or custom domain
		return fmt.Sprintf("%s/%s", s.baseURL, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.client.Options().Region, key)
}

func (s *S3Storage) objectKey(objectURLOrKey string) (string, error) {
	if !strings.Contains(objectURLOrKey, "://") {
		return objectURLOrKey, nil
	}
	u, err := url.Parse(objectURLOrKey)
	if err != nil {
		return "", fmt.Errorf("invalid object URL: %w", err)
	}
	key := strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", fmt.Errorf("object URL %s has no key", objectURLOrKey)
	}
	return key, nil
}
