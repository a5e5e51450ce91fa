package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldPath(t *testing.T) {
	tests := []struct {
		pointer []string
		want    string
	}{
		{nil, "body"},
		{[]string{"weight"}, "weight"},
		{[]string{"parcels", "0", "weight"}, "parcels[0].weight"},
		{[]string{"user", "role"}, "user.role"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, fieldPath(tt.pointer))
	}
}

func TestBearerToken(t *testing.T) {
	token, ok := bearerToken("Bearer abc")
	assert.True(t, ok)
	assert.Equal(t, "abc", token)

	token, ok = bearerToken("bearer   xyz ")
	assert.True(t, ok)
	assert.Equal(t, "xyz", token)

	_, ok = bearerToken("Basic abc")
	assert.False(t, ok)

	_, ok = bearerToken("Bearer")
	assert.False(t, ok)
}
