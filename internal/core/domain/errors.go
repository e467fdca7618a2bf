package domain

import "errors"

var (
	ErrTitleRequired = errors.New("title is required")
	ErrFileRequired  = errors.New("no video uploaded")
	ErrNotFound      = errors.New("video not found")
	ErrProbe         = errors.New("error processing video")
)
