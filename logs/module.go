package logs

import (
	"context"

	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

type Span string

type spanKey struct{}

var SpanKey = spanKey{}

type programKey struct{}

// WithProgram tags records logged under ctx with the program name.
func WithProgram(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, programKey{}, name)
}
