//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"ootd-commerce/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursor(t *testing.T) {
	t.Run("round trip keeps microseconds", func(t *testing.T) {
		at := time.Date(2026, 4, 1, 12, 30, 15, 123456789, time.UTC)
		id := uuid.New()

		gotAt, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(at, id))
		require.NoError(t, err)
		assert.Equal(t, id, gotID)
		assert.True(t, at.Truncate(time.Microsecond).Equal(gotAt))
	})

	invalid := map[string]string{
		"not base64":     "***",
		"missing prefix": base64.RawURLEncoding.EncodeToString([]byte("123-" + uuid.NewString())),
		"bad timestamp":  base64.RawURLEncoding.EncodeToString([]byte("v1:abc-" + uuid.NewString())),
		"bad uuid":       base64.RawURLEncoding.EncodeToString([]byte("v1:123-nope")),
		"no separator":   base64.RawURLEncoding.EncodeToString([]byte("v1:123")),
	}
	for name, cursor := range invalid {
		t.Run(name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(cursor)
			assert.ErrorIs(t, err, queries.ErrInvalidCursor)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(-1))
	assert.Equal(t, 7, queries.ValidateLimit(7))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit+1))
}
