// Package http holds the router seam, the server and the JSON envelope responders
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "inspectgrade/internal/platform/errors"
	"inspectgrade/internal/platform/logger"
	pnet "inspectgrade/internal/platform/net"
)

// Envelope wraps every JSON body the service writes
// Data is set on success, Code/Error/Field on failure
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	Field      string         `json:"field,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		encodeFailed(err, status)
	}
}

// encodeFailed is a seam for tests; the header is already out, so the error can only be logged
var encodeFailed = func(err error, status int) {
	logger.Get().Debug().Err(err).Int("status", status).Msg("response encode failed")
}

// RespondError writes err as an envelope, status comes from its code
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	Error(err).write(w, r)
}

// Response is what return-style handlers produce
// an error Body derives status and envelope from its code and ignores Status
type Response struct {
	Status int
	Body   any
	Header stdhttp.Header
}

// OK returns a 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Error returns a response that maps the error to status and envelope
func Error(err error) Response { return Response{Body: err} }

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) envelope(reqID string) Envelope {
	if err, ok := resp.Body.(error); ok && err != nil {
		status, wr := perr.HTTP(err)
		return Envelope{
			StatusCode: status,
			Status:     stdhttp.StatusText(status),
			Code:       wr.Code,
			Error:      wr.Message,
			Field:      wr.Field,
			RequestID:  reqID,
		}
	}
	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	return Envelope{
		StatusCode: status,
		Status:     stdhttp.StatusText(status),
		RequestID:  reqID,
		Data:       resp.Body,
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}
	env := resp.envelope(pnet.RequestID(r.Context()))
	JSON(w, env.StatusCode, env)
}
