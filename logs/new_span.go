package logs

import (
	"context"
	"crypto/rand"
)

// NewSpan starts a span under parent, or under the span carried by ctx when parent is empty.
type NewSpan func(ctx context.Context, what string, parent Span) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, what string, parent Span) (context.Context, Span) {
		var creator Span
		if v := ctx.Value(SpanKey); v != nil {
			creator = v.(Span)
		}
		if parent == "" {
			parent = creator
		}

		span := Span(rand.Text())
		ctx = context.WithValue(ctx, SpanKey, span)

		args := []any{"what", what}
		if creator != "" && creator != parent {
			args = append(args, "creator", creator)
		}
		if parent != "" {
			args = append(args, "parent", parent)
		}
		logger.InfoContext(ctx, "new span", args...)

		return ctx, span
	}
}
