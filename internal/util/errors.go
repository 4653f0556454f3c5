package util

import "errors"

var (
	ErrNotFound = errors.New("resource not found")

	ErrNoExtractableText = errors.New("no extractable text found in PDF")
)
