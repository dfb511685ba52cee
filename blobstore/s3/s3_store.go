package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/hupe1980/runmerge/blobstore"
)

// Store implements blobstore.BlobStore for S3.
type Store struct {
	client     Client
	bucket     string
	dir        string
	downloader *manager.Downloader
}

// Options tunes object downloads.
type Options struct {
	// PartSize is the ranged GET size used for whole-object reads.
	// Zero uses the transfer manager default.
	PartSize int64
	// Concurrency is the number of parallel part downloads per object.
	// Zero uses the transfer manager default.
	Concurrency int
}

// NewStore creates a new S3 blob store.
// rootPrefix is the "directory" holding the sources (e.g. "runs/").
func NewStore(client Client, bucket, rootPrefix string, optFns ...func(*Options)) *Store {
	var opts Options
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Store{
		client: client,
		bucket: bucket,
		dir:    blobstore.DirPrefix(rootPrefix),
		downloader: manager.NewDownloader(client, func(d *manager.Downloader) {
			if opts.PartSize > 0 {
				d.PartSize = opts.PartSize
			}
			if opts.Concurrency > 0 {
				d.Concurrency = opts.Concurrency
			}
		}),
	}
}

// List returns the objects directly under the root prefix.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	return listObjects(ctx, s.client, s.bucket, s.dir, prefix)
}

// Open checks that the object exists and returns a handle sized from its metadata.
func (s *Store) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	key := s.dir + name
	size, err := headSize(ctx, s.client, s.bucket, key)
	if err != nil {
		return nil, err
	}
	return &s3Blob{store: s, key: key, size: size}, nil
}

// s3Blob implements blobstore.Blob
type s3Blob struct {
	store *Store
	key   string
	size  int64
}

func (b *s3Blob) Close() error {
	return nil
}

func (b *s3Blob) Size() int64 {
	return b.size
}

func (b *s3Blob) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	rc, err := b.ReadRange(ctx, off, int64(len(p)))
	if err != nil {
		return 0, err
	}
	defer rc.Close()

	n, err := io.ReadFull(rc, p)
	if err == io.ErrUnexpectedEOF {
		return n, io.EOF
	}
	return n, err
}

// ReadRange downloads [off, off+length) into memory. Whole-object reads are
// split into parallel part downloads by the transfer manager.
func (b *s3Blob) ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error) {
	if off < 0 || length < 0 {
		return nil, blobstore.ErrInvalidRange
	}
	if off > b.size {
		return nil, io.EOF
	}
	end := min(off+length, b.size)
	if end == off {
		return io.NopCloser(bytes.NewReader(nil)), nil
	}

	in := &s3.GetObjectInput{
		Bucket: aws.String(b.store.bucket),
		Key:    aws.String(b.key),
	}
	if off != 0 || end != b.size {
		in.Range = aws.String(fmt.Sprintf("bytes=%d-%d", off, end-1))
	}

	buf := manager.NewWriteAtBuffer(make([]byte, 0, end-off))
	n, err := b.store.downloader.Download(ctx, buf, in)
	if err != nil {
		if isNotFound(err) {
			return nil, blobstore.ErrNotFound
		}
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(buf.Bytes()[:n])), nil
}
