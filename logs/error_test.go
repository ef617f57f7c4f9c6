package logs

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestWrapSpan(t *testing.T) {
	base := errors.New("boom")
	ctx := context.Background()
	if err := WrapSpan(ctx, base); err != base {
		t.Fatalf("got %v", err)
	}
	if err := WrapSpan(ctx, nil); err != nil {
		t.Fatalf("got %v", err)
	}

	ctx = context.WithValue(ctx, SpanKey, Span("foo"))
	ctx = WithProgram(ctx, "hello.bf")
	err := WrapSpan(ctx, base)
	if !errors.Is(err, base) {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), "span: foo") {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), "program: hello.bf") {
		t.Fatalf("got %v", err)
	}
}
