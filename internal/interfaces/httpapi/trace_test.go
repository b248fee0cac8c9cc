package httpapi

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldCreateHTTPAPISpan(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "player handler", in: "httpapi.Handler.ListPlayers", want: true},
		{name: "description handler", in: "httpapi.Handler.GeneratePlayerDescription", want: true},
		{name: "health handler", in: "httpapi.Handler.Healthz", want: false},
		{name: "middleware", in: "httpapi.RequestLogging", want: false},
		{name: "response helper", in: "httpapi.writeError", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shouldCreateHTTPAPISpan(tt.in))
		})
	}
}

func TestStartSpan_WithoutParentIsNoop(t *testing.T) {
	ctx := context.Background()
	got, span := startSpan(ctx, "httpapi.Handler.GetPlayer")
	defer span.End()

	assert.Equal(t, ctx, got)
	assert.False(t, span.SpanContext().IsValid())
}
