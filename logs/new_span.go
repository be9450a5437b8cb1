package logs

import (
	"context"
	"crypto/rand"
)

// NewSpan starts a span named by what, nested under parent or the span of ctx.
type NewSpan func(ctx context.Context, parent Span, what string) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, parent Span, what string) (context.Context, Span) {

		// creator
		var creatorSpan Span
		if v := ctx.Value(SpanKey); v != nil {
			creatorSpan = v.(Span)
		}
		if parent == "" {
			parent = creatorSpan
		}

		span := Span(rand.Text())
		ctx = context.WithValue(ctx, SpanKey, span)

		args := []any{"what", what}
		if creatorSpan != "" && creatorSpan != parent {
			args = append(args, "creator", creatorSpan)
		}
		if parent != "" {
			args = append(args, "parent", parent)
		}
		logger.DebugContext(ctx, "new span", args...)

		return ctx, span
	}
}
