package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-catalog/models"
	"github.com/stretchr/testify/assert"
)

func TestUserCtxKey(t *testing.T) {
	assert.Equal(t, "user", UserCtxKey.String())
}

func TestGetUserFromContext(t *testing.T) {
	t.Run("token stored", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), UserCtxKey, models.Token{UserID: 42, Login: "bob"})

		token, ok := GetUserFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, int64(42), token.UserID)
		assert.Equal(t, "bob", token.Login)
	})

	t.Run("missing", func(t *testing.T) {
		_, ok := GetUserFromContext(context.Background())
		assert.False(t, ok)
	})

	t.Run("wrong type", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), UserCtxKey, "not-a-token")
		_, ok := GetUserFromContext(ctx)
		assert.False(t, ok)
	})
}

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()
	first, second := g.Generate(), g.Generate()

	assert.Len(t, first, 36)
	assert.NotEqual(t, first, second)
}
