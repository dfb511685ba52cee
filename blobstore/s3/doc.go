// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	store := s3.NewStore(awss3.NewFromConfig(cfg), "my-bucket", "runs/")
//
//	report, err := runmerge.Merge(ctx, store, out)
//
// # Features
//
//   - Only direct children of the prefix are sources (delimiter "/")
//   - Whole-object reads use the transfer manager's parallel ranged download
//   - Automatic pagination for listing
package s3
