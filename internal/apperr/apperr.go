package apperr

import (
	"errors"
	"net/http"
)

// Error 统一业务错误：HTTP 状态 + 对外 message（Err 仅用于日志，不外泄）
type Error struct {
	Status int
	Msg    string
	Err    error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "app error"
}

func (e *Error) Unwrap() error { return e.Err }

func BadRequest(msg string) error   { return &Error{Status: http.StatusBadRequest, Msg: msg} }
func Unauthorized(msg string) error { return &Error{Status: http.StatusUnauthorized, Msg: msg} }
func Forbidden(msg string) error    { return &Error{Status: http.StatusForbidden, Msg: msg} }
func NotFound(msg string) error     { return &Error{Status: http.StatusNotFound, Msg: msg} }
func Internal(msg string, err error) error {
	return &Error{Status: http.StatusInternalServerError, Msg: msg, Err: err}
}

// Resolve 任意 error 映射为 (status, message)；非业务错误一律 500，不泄内部细节
func Resolve(err error) (int, string) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Status, ae.Msg
	}
	return http.StatusInternalServerError, "Internal server error"
}
