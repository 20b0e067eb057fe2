package services

import "errors"

var (
	ErrNoExtractedText = errors.New("Could not extract text from the document.")
	ErrNoSummary       = errors.New("The API did not return a summary.")
	ErrInvalidLength   = errors.New("Invalid length. Expected one of: short, medium, long.")
)
