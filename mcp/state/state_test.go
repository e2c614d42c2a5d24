package state

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextRoundTrip(t *testing.T) {
	s := New()
	s.Set("env", "PRODUCTION")

	ctx := With(context.Background(), s)
	got, ok := From(ctx)
	assert.True(t, ok)
	assert.Equal(t, s, got)
	assert.EqualValues(t, "PRODUCTION", got.String("env", "UNKNOWN"))
	assert.EqualValues(t, "fallback", got.String("missing", "fallback"))

	_, ok = From(context.Background())
	assert.False(t, ok)
}
