package content

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"

	"career-passport/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Source fetches the raw bytes of a named content document.
type Source interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
	String() string
}

// FSSource reads documents from a file system rooted at the content dir.
type FSSource struct {
	fsys fs.FS
	desc string
}

// NewFSSource serves documents from fsys.
func NewFSSource(fsys fs.FS, desc string) *FSSource {
	return &FSSource{fsys: fsys, desc: desc}
}

// NewDirSource serves documents from a local directory.
func NewDirSource(dir string) *FSSource {
	return NewFSSource(os.DirFS(dir), "dir:"+dir)
}

func (s *FSSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return fs.ReadFile(s.fsys, name)
}

func (s *FSSource) String() string { return s.desc }

// HTTPSource fetches documents with GET {baseURL}/{name}.
type HTTPSource struct {
	baseURL string
	client  *http.Client
}

func NewHTTPSource(baseURL string, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (s *HTTPSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/"+name, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, name)
	}
	return io.ReadAll(resp.Body)
}

func (s *HTTPSource) String() string { return "http:" + s.baseURL }

// ObjectGetter is the part of the S3 client the content source uses.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source reads documents from {bucket}/{prefix}/{name}. Works with any
// S3-compatible store (R2, MinIO) through a custom endpoint.
type S3Source struct {
	client ObjectGetter
	bucket string
	prefix string
}

func NewS3Source(client ObjectGetter, bucket, prefix string) *S3Source {
	return &S3Source{client: client, bucket: bucket, prefix: strings.Trim(prefix, "/")}
}

func (s *S3Source) key(name string) string {
	if s.prefix == "" {
		return name
	}
	return path.Join(s.prefix, name)
}

func (s *S3Source) Fetch(ctx context.Context, name string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	defer out.Body.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, out.Body); err != nil {
		return nil, fmt.Errorf("failed to read object body: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *S3Source) String() string { return "s3://" + s.bucket + "/" + s.prefix }

// NewS3Client builds an S3 client from the content configuration. Static
// credentials are used when both keys are set, otherwise the default
// AWS credential chain applies.
func NewS3Client(ctx context.Context, cfg config.S3Config) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// NewSource picks the content source named by cfg.Source.
func NewSource(ctx context.Context, cfg config.ContentConfig) (Source, error) {
	switch cfg.Source {
	case config.ContentSourceDir, "":
		return NewDirSource(cfg.Dir), nil
	case config.ContentSourceHTTP:
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("content.base_url is required for the http source")
		}
		client := &http.Client{Timeout: cfg.HTTPTimeout}
		return NewHTTPSource(cfg.BaseURL, client), nil
	case config.ContentSourceS3:
		if cfg.S3.Bucket == "" {
			return nil, fmt.Errorf("content.s3.bucket is required for the s3 source")
		}
		client, err := NewS3Client(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}
		return NewS3Source(client, cfg.S3.Bucket, cfg.S3.Prefix), nil
	default:
		return nil, fmt.Errorf("unknown content source %q", cfg.Source)
	}
}
