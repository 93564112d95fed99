package services

import "errors"

// Conversion service errors
var (
	ErrNoDocuments        = errors.New("no documents supplied")
	ErrAllDocumentsFailed = errors.New("every document failed to decode")
)
