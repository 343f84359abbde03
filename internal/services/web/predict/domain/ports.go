package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	PredictEncoded(ctx context.Context, in EncodedInput) (Result, error)
	PredictRaw(ctx context.Context, in RawInput) (Result, error)
	Form(ctx context.Context) (Form, error)
}
