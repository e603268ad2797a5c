package errorx

import (
	"context"
	"errors"
	"net/http"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpx"
)

// CodeError is a typed error that carries an HTTP status code. Logic
// functions return these so the global error handler can pick the status.
type CodeError struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

func (e *CodeError) Error() string {
	return e.Msg
}

// ErrNotFound returns a 404 error.
func ErrNotFound(msg string) error {
	return &CodeError{Code: http.StatusNotFound, Msg: msg}
}

// ErrBadRequest returns a 400 error.
func ErrBadRequest(msg string) error {
	return &CodeError{Code: http.StatusBadRequest, Msg: msg}
}

// ErrBadGateway returns a 502 error for a failing upstream service.
func ErrBadGateway(msg string) error {
	return &CodeError{Code: http.StatusBadGateway, Msg: msg}
}

// ErrUnavailable returns a 503 error for a service that is not configured.
func ErrUnavailable(msg string) error {
	return &CodeError{Code: http.StatusServiceUnavailable, Msg: msg}
}

// ErrInternal returns a 500 error.
func ErrInternal(msg string) error {
	return &CodeError{Code: http.StatusInternalServerError, Msg: msg}
}

// Code returns the HTTP status carried by err, or 500.
func Code(err error) int {
	var ce *CodeError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return http.StatusInternalServerError
}

// RegisterErrorHandler installs a global error handler that maps CodeError
// to its HTTP status. Untyped errors become 500 and are logged.
func RegisterErrorHandler() {
	httpx.SetErrorHandlerCtx(handle)
}

func handle(ctx context.Context, err error) (int, any) {
	var ce *CodeError
	if errors.As(err, &ce) {
		return ce.Code, &CodeError{Code: ce.Code, Msg: ce.Msg}
	}

	logx.WithContext(ctx).Errorf("unexpected error: %v", err)
	return http.StatusInternalServerError, &CodeError{
		Code: http.StatusInternalServerError,
		Msg:  "internal server error",
	}
}
