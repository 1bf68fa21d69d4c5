package services

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	appconfig "github.com/i-ankit-here/scrap-con-backend/internal/config"
)

var (
	ErrMediaNotConfigured = errors.New("media storage not configured")
	ErrMediaInput         = errors.New("kind, file name, and content type are required")
	ErrMediaKind          = errors.New("unknown media kind")
)

var mediaKindPrefixes = map[string]string{
	"category-icon": "icons",
	"pickup-photo":  "pickups",
}

// MediaService issues presigned S3 URLs for icon and photo uploads. The
// client never touches our server with file bytes.
type MediaService struct {
	bucket    string
	urlExpiry time.Duration
	presigner *s3.PresignClient
}

func NewMediaService(ctx context.Context, cfg *appconfig.Config) (*MediaService, error) {
	if cfg.MediaBucket == "" {
		return &MediaService{}, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)
	return &MediaService{
		bucket:    cfg.MediaBucket,
		urlExpiry: cfg.MediaURLExpiry,
		presigner: s3.NewPresignClient(client),
	}, nil
}

func (s *MediaService) Enabled() bool {
	return s.presigner != nil
}

// PresignUpload returns a presigned PUT URL and the object key the client
// must upload to.
func (s *MediaService) PresignUpload(ctx context.Context, kind, fileName, contentType string) (string, string, error) {
	if !s.Enabled() {
		return "", "", ErrMediaNotConfigured
	}
	if kind == "" || fileName == "" || contentType == "" {
		return "", "", ErrMediaInput
	}

	prefix, ok := mediaKindPrefixes[kind]
	if !ok {
		return "", "", ErrMediaKind
	}

	ext := strings.ToLower(path.Ext(fileName))
	key := fmt.Sprintf("%s/%s%s", prefix, uuid.New().String(), ext)

	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(s.urlExpiry))
	if err != nil {
		return "", "", fmt.Errorf("failed to presign upload: %w", err)
	}

	return req.URL, key, nil
}

// PresignDownload returns a presigned GET URL for a stored object.
func (s *MediaService) PresignDownload(ctx context.Context, key string) (string, error) {
	if !s.Enabled() {
		return "", ErrMediaNotConfigured
	}
	if key == "" {
		return "", ErrMediaInput
	}

	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.urlExpiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign download: %w", err)
	}

	return req.URL, nil
}
