package net_test

import (
	"context"
	"testing"

	pnet "inspectgrade/internal/platform/net"

	chimw "github.com/go-chi/chi/v5/middleware"
)

func TestWithRequest_And_RequestID(t *testing.T) {
	base := context.Background()

	t.Run("sets request id", func(t *testing.T) {
		ctx := pnet.WithRequest(base, "req-123")
		if got := pnet.RequestID(ctx); got != "req-123" {
			t.Fatalf("RequestID got %q want %q", got, "req-123")
		}
		// chi reads the same key
		if got := chimw.GetReqID(ctx); got != "req-123" {
			t.Fatalf("chimw.GetReqID got %q", got)
		}
	})

	t.Run("empty id returns same ctx", func(t *testing.T) {
		ctx := pnet.WithRequest(base, "")
		if ctx != base {
			t.Fatalf("expected ctx to be unchanged when id empty")
		}
		if got := pnet.RequestID(ctx); got != "" {
			t.Fatalf("RequestID got %q want empty", got)
		}
	})
}
