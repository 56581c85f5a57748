package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Persistence errors. Read failures are normally recovered by the
	// services; write failures always reach the caller.
	ErrStorageRead  = errors.New("storage read failed")
	ErrStorageWrite = errors.New("storage write failed")

	// Validation errors.
	ErrInvalidMood   = errors.New("invalid mood")
	ErrInvalidBackup = errors.New("invalid backup")
)
