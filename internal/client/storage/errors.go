package storage

import "errors"

var (
	// ErrBlobNotFound nothing is stored under the namespace yet
	ErrBlobNotFound = errors.New("blob not found")

	// ErrStorageClosed the backend was closed
	ErrStorageClosed = errors.New("storage is closed")

	// ErrStorageLocked the database file is held by another fitjournal process
	ErrStorageLocked = errors.New("storage is locked by another process")
)
