package constants

import (
	"errors"
	"net/http"
)

// CodedError carries the HTTP status the api layer answers with.
type CodedError struct {
	msg  string
	code int
}

func NewCodedError(msg string, code int) *CodedError {
	return &CodedError{msg: msg, code: code}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrDBNotFound        = NewCodedError("not found", http.StatusNotFound)
	ErrIndicatorNotFound = NewCodedError("indicator not found", http.StatusNotFound)
	ErrBadRequest        = NewCodedError("bad request", http.StatusBadRequest)
	ErrUnknownDriver     = errors.New("unknown store driver")
)
