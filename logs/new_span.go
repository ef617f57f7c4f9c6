package logs

import (
	"context"
	"crypto/rand"
)

// NewSpan starts a span under parent, or under the span of ctx when parent is empty.
type NewSpan func(ctx context.Context, parent Span) (context.Context, Span)

const spanIDLength = 12

// SpanOf returns the current span of ctx, empty if none.
func SpanOf(ctx context.Context) Span {
	span, _ := ctx.Value(SpanKey).(Span)
	return span
}

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, parent Span) (context.Context, Span) {
		creator := SpanOf(ctx)
		if parent == "" {
			parent = creator
		}

		span := Span(rand.Text()[:spanIDLength])
		ctx = context.WithValue(ctx, SpanKey, span)

		args := make([]any, 0, 4)
		if parent != "" {
			args = append(args, "parent", parent)
		}
		if creator != "" && creator != parent {
			args = append(args, "creator", creator)
		}
		logger.DebugContext(ctx, "new span", args...)

		return ctx, span
	}
}
