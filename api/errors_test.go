package api

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageOr(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"backend message", newError(500, "database down"), "database down"},
		{"no message", newError(500, ""), "fallback"},
		{"backend message spelling the generic text", newError(500, FallbackMessage), FallbackMessage},
		{"not an api error", errors.New("dial tcp: refused"), "fallback"},
		{"wrapped", fmt.Errorf("list posts: %w", newError(404, "Blog not found")), "Blog not found"},
		{"nil", nil, "fallback"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MessageOr(tc.err, "fallback"))
		})
	}
}

func TestErrorStringFallsBackWhenMessageEmpty(t *testing.T) {
	assert.Equal(t, FallbackMessage, (&Error{Status: 500, Kind: KindRequest}).Error())
	assert.Equal(t, "quota exceeded", (&Error{Status: 500, Message: "quota exceeded"}).Error())
}

func TestNewErrorClassifiesStatus(t *testing.T) {
	assert.Equal(t, KindNotFound, newError(404, "").Kind)
	assert.Equal(t, KindUnauthorized, newError(401, "").Kind)
	assert.Equal(t, KindUnauthorized, newError(403, "").Kind)
	assert.Equal(t, KindRequest, newError(500, "").Kind)
}
