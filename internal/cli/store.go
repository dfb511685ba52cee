package cli

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	miniogo "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/hupe1980/runmerge/blobstore"
	"github.com/hupe1980/runmerge/blobstore/minio"
	"github.com/hupe1980/runmerge/blobstore/s3"
)

// Location schemes.
const (
	SchemeLocal = "file"
	SchemeS3    = "s3"
	SchemeMinIO = "minio"
)

// Location is a parsed source directory.
type Location struct {
	Scheme   string
	Endpoint string // minio only
	Bucket   string
	Prefix   string
	Path     string // local only
}

// ParseLocation parses a directory setting. Anything that is not an s3:// or
// minio:// URL is a local path.
func ParseLocation(dir string) (Location, error) {
	switch {
	case strings.HasPrefix(dir, "s3://"):
		u, err := url.Parse(dir)
		if err != nil {
			return Location{}, err
		}
		if u.Host == "" {
			return Location{}, fmt.Errorf("missing bucket in %q", dir)
		}
		return Location{Scheme: SchemeS3, Bucket: u.Host, Prefix: strings.TrimPrefix(u.Path, "/")}, nil
	case strings.HasPrefix(dir, "minio://"):
		u, err := url.Parse(dir)
		if err != nil {
			return Location{}, err
		}
		bucket, prefix, _ := strings.Cut(strings.TrimPrefix(u.Path, "/"), "/")
		if u.Host == "" || bucket == "" {
			return Location{}, fmt.Errorf("expected minio://endpoint/bucket[/prefix], got %q", dir)
		}
		return Location{Scheme: SchemeMinIO, Endpoint: u.Host, Bucket: bucket, Prefix: prefix}, nil
	default:
		return Location{Scheme: SchemeLocal, Path: dir}, nil
	}
}

// OpenStore builds the store for loc. getenv supplies MinIO credentials
// (MINIO_ACCESS_KEY, MINIO_SECRET_KEY, MINIO_INSECURE); S3 uses the default
// AWS credential chain.
func OpenStore(ctx context.Context, loc Location, getenv func(string) string) (blobstore.BlobStore, error) {
	switch loc.Scheme {
	case SchemeS3:
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		return s3.NewStore(awss3.NewFromConfig(cfg), loc.Bucket, loc.Prefix), nil
	case SchemeMinIO:
		client, err := miniogo.New(loc.Endpoint, &miniogo.Options{
			Creds:  credentials.NewStaticV4(getenv("MINIO_ACCESS_KEY"), getenv("MINIO_SECRET_KEY"), ""),
			Secure: !strings.EqualFold(getenv("MINIO_INSECURE"), "true"),
		})
		if err != nil {
			return nil, fmt.Errorf("create minio client: %w", err)
		}
		return minio.NewStore(client, loc.Bucket, loc.Prefix), nil
	default:
		return blobstore.NewLocalStore(loc.Path), nil
	}
}
