// Package usecase implements the business logic for the posts feature.
package usecase

import "errors"

var (
	// ErrPostNotFound is returned when no post exists for the given ID.
	// An unparseable ID is reported identically to an unknown one.
	ErrPostNotFound = errors.New("post not found")

	// ErrNotOwner is returned when the caller is authenticated but does not
	// own the post it is trying to delete.
	ErrNotOwner = errors.New("not authorized to modify this post")

	// ErrMediaUpload wraps any failure while staging or uploading the file
	// to the media store. No post row exists when this is returned.
	ErrMediaUpload = errors.New("media upload failed")
)
