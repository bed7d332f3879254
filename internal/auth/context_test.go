package auth

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestClaimsContextRoundTrip(t *testing.T) {
	_, ok := ClaimsFromContext(context.Background())
	assert.False(t, ok)

	claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"}}
	got, ok := ClaimsFromContext(WithClaims(context.Background(), claims))
	assert.True(t, ok)
	assert.Same(t, claims, got)
}
