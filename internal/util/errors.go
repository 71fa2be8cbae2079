// internal/util/errors.go
// Definisi error aplikasi standar

package util

import (
	"errors"
	"fmt"
)

const (
	CodeBadInput  = "bad_input"
	CodeNotFound  = "not_found"
	CodeTransport = "transport"
	CodeBadData   = "bad_data"
)

type AppError struct {
	Code    string
	Message string
	Err     error // penyebab asli, opsional
}

func (e AppError) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e AppError) Unwrap() error { return e.Err }

func BadInput(msg string) AppError { return AppError{Code: CodeBadInput, Message: msg} }
func NotFound(msg string) AppError { return AppError{Code: CodeNotFound, Message: msg} }

func Transport(msg string, err error) AppError {
	return AppError{Code: CodeTransport, Message: msg, Err: err}
}

func BadData(msg string, err error) AppError {
	return AppError{Code: CodeBadData, Message: msg, Err: err}
}

// CodeOf mengembalikan kode AppError, atau "internal" untuk error lain.
func CodeOf(err error) string {
	var ae AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return "internal"
}
