package http

import (
	"net/http"

	"inspectgrade/internal/platform/net/http/bind"
)

// JSONHandler decodes and validates a T body before calling fn
// decode and validation failures never reach fn
func JSONHandler[T any](fn func(*http.Request, T) (any, error), opts ...bind.JSONOptions) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r, opts...)
		if err != nil {
			return Error(err)
		}
		return Result(fn(r, in))
	})
}

// Result folds a handler's return pair into a Response
// a Response value is passed through so handlers can pick their own status
func Result(out any, err error) Response {
	if err != nil {
		return Error(err)
	}
	if resp, ok := out.(Response); ok {
		return resp
	}
	return OK(out)
}
