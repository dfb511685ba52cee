package blobstore

import "errors"

// ErrInvalidRange is returned for negative offsets or lengths.
var ErrInvalidRange = errors.New("blobstore: invalid range")
