package logs

import (
	"context"
	"errors"
	"fmt"
)

// WrapSpan joins the span and program of ctx into err.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if v := ctx.Value(programKey{}); v != nil {
		err = errors.Join(err, fmt.Errorf("program: %s", v.(string)))
	}
	if span := SpanOf(ctx); span != "" {
		err = errors.Join(err, fmt.Errorf("span: %s", span))
	}
	return err
}
