package publish

import "errors"

var (
	// ErrNoBucket is returned when an uploader is configured without a bucket
	ErrNoBucket = errors.New("publish: no bucket configured")
	// ErrUploadFailed wraps errors from the object store
	ErrUploadFailed = errors.New("publish: upload failed")
)
