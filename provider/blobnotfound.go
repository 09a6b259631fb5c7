package provider

import (
	"errors"
	"fmt"

	azStorageBlob "github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
)

const (
	azblobBlobNotFound = "BlobNotFound"
)

// storageErrorCode returns the azure storage error code carried by err. The
// sdk returns a StorageError either in the chain or behind an InternalError.
func storageErrorCode(err error) (string, bool) {
	var serr *azStorageBlob.StorageError
	if errors.As(err, &serr) {
		return string(serr.ErrorCode), true
	}
	var ierr *azStorageBlob.InternalError
	if errors.As(err, &ierr) && ierr != nil && ierr.As(&serr) {
		return string(serr.ErrorCode), true
	}
	return "", false
}

// wrapBlobNotFound maps the sdk's BlobNotFound storage error for blobPath to
// ErrNotFound. Other errors are annotated with the path and returned.
func wrapBlobNotFound(blobPath string, err error) error {
	if errors.Is(err, ErrNotFound) {
		return err
	}
	if code, ok := storageErrorCode(err); ok && code == azblobBlobNotFound {
		return fmt.Errorf("%w: %s", ErrNotFound, blobPath)
	}
	return fmt.Errorf("%s: %w", blobPath, err)
}

// IsBlobNotFound reports whether err is ErrNotFound or the azure sdk's
// BlobNotFound storage error.
func IsBlobNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrNotFound) {
		return true
	}
	code, ok := storageErrorCode(err)
	return ok && code == azblobBlobNotFound
}
