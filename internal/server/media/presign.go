// Package media hands out presigned S3 upload URLs for resource images.
// Clients PUT the image directly to object storage and store the returned
// object URL in the resource's image_url field.
package media

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/desawisata/internal/common"
	"github.com/google/uuid"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
)

// Folders an upload may be filed under, one per resource route.
var folders = map[string]bool{
	"destinasi": true,
	"paket":     true,
	"blog":      true,
}

var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

type Config struct {
	Bucket       string
	Region       string
	AccessKey    string
	SecretKey    string
	BaseEndpoint string
	TTL          time.Duration
}

// Upload describes one presigned PUT.
type Upload struct {
	Key       string    `json:"key"`
	UploadURL string    `json:"upload_url"`
	ObjectURL string    `json:"object_url"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Presigner struct {
	cfg Config
	now func() time.Time
}

func NewPresigner(cfg Config) *Presigner {
	return &Presigner{cfg: cfg, now: time.Now}
}

// ObjectKey builds a unique key such as "blog/2026/10/19/<uuid>.png".
func ObjectKey(folder, ext string, t time.Time) string {
	return fmt.Sprintf("%s/%d/%02d/%02d/%s%s", folder, t.Year(), t.Month(), t.Day(), uuid.New(), ext)
}

func (p *Presigner) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(p.cfg.Region)}
	if p.cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(p.cfg.AccessKey, p.cfg.SecretKey, "")))
	}

	cfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if p.cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(p.cfg.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return newS3PresignClient(client), nil
}

// PresignPut returns a URL the caller can PUT an image of contentType to.
// folder must name a resource route.
func (p *Presigner) PresignPut(ctx context.Context, folder, contentType string) (*Upload, error) {
	if !folders[folder] {
		return nil, fmt.Errorf("%w: unknown folder %q", common.ErrValidation, folder)
	}
	ext, ok := extensions[strings.ToLower(contentType)]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported content type %q", common.ErrValidation, contentType)
	}

	presignClient, err := p.getPresignClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: aws config: %w", common.ErrorInternal, err)
	}

	now := p.now()
	bucket := p.cfg.Bucket
	key := ObjectKey(folder, ext, now)

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(p.cfg.TTL))
	if err != nil {
		return nil, fmt.Errorf("%w: presign put: %w", common.ErrorInternal, err)
	}

	return &Upload{
		Key:       key,
		UploadURL: req.URL,
		ObjectURL: p.ObjectURL(key),
		ExpiresAt: now.Add(p.cfg.TTL),
	}, nil
}

// ObjectURL is the public address of key: path style under BaseEndpoint
// when one is configured, the virtual-hosted AWS address otherwise.
func (p *Presigner) ObjectURL(key string) string {
	escaped := (&url.URL{Path: key}).EscapedPath()
	if p.cfg.BaseEndpoint != "" {
		return strings.TrimRight(p.cfg.BaseEndpoint, "/") + "/" + p.cfg.Bucket + "/" + escaped
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", p.cfg.Bucket, p.cfg.Region, escaped)
}
