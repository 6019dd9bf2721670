package service

import "errors"

// Package service contains the use-case layer. Services enforce the
// ownership contract: every operation takes the caller's verified doctor id
// and no query escapes that scope.

var (
	ErrIDRequired         = errors.New("id is required")
	ErrNameRequired       = errors.New("name is required")
	ErrDiagnosisRequired  = errors.New("diagnosis is required")
	ErrReaderNil          = errors.New("reader is nil")
	ErrPatientNotFound    = errors.New("patient not found")
	ErrRecordNotFound     = errors.New("record not found")
	ErrAttachmentNotFound = errors.New("attachment not found")
)
