package service

import (
	"errors"
	"fmt"
)

// ErrorCode identifies why an extraction request failed. The codes travel to
// the client so it can show the right message.
type ErrorCode string

const (
	// ErrCodePageNotSupported means the page was reachable but carried no
	// recipe the extractor could use.
	ErrCodePageNotSupported ErrorCode = "PAGE_NOT_SUPPORTED"
	// ErrCodeExtractionFailed covers transport, model and parse failures.
	ErrCodeExtractionFailed ErrorCode = "EXTRACTION_FAILED"
)

// ExtractionError is the typed failure surfaced by the extraction
// collaborator. The core never sees these; they stop at the handler.
type ExtractionError struct {
	Code ErrorCode
	Err  error
}

func (e *ExtractionError) Error() string {
	if e.Err == nil {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %v", e.Code, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// ExtractionCode returns the error code carried by err, or
// ErrCodeExtractionFailed for untyped failures.
func ExtractionCode(err error) ErrorCode {
	var ee *ExtractionError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return ErrCodeExtractionFailed
}

func pageNotSupported(err error) *ExtractionError {
	return &ExtractionError{Code: ErrCodePageNotSupported, Err: err}
}

func extractionFailed(err error) *ExtractionError {
	return &ExtractionError{Code: ErrCodeExtractionFailed, Err: err}
}
