package pgauth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/goldengigs/goldengigs/internal/errors"
)

func TestTokenCodec_RoundTrip(t *testing.T) {
	codec := NewTokenCodec([]byte("test-secret-test-secret-test-123"), time.Hour)

	token, err := codec.Mint("sess-abc")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sid, err := codec.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "sess-abc", sid)
}

func TestTokenCodec_RejectsTampering(t *testing.T) {
	codec := NewTokenCodec([]byte("test-secret-test-secret-test-123"), time.Hour)
	token, err := codec.Mint("sess-abc")
	require.NoError(t, err)

	_, err = codec.Parse(token + "x")
	assert.True(t, apperrors.IsNotAuthenticated(err))

	other := NewTokenCodec([]byte("a-different-secret-entirely-1234"), time.Hour)
	_, err = other.Parse(token)
	assert.True(t, apperrors.IsNotAuthenticated(err))
}

func TestTokenCodec_RejectsExpired(t *testing.T) {
	codec := NewTokenCodec([]byte("test-secret-test-secret-test-123"), -time.Minute)
	token, err := codec.Mint("sess-abc")
	require.NoError(t, err)

	_, err = codec.Parse(token)
	assert.True(t, apperrors.IsNotAuthenticated(err))
}

func TestTokenCodec_RejectsGarbage(t *testing.T) {
	codec := NewTokenCodec([]byte("test-secret-test-secret-test-123"), time.Hour)
	_, err := codec.Parse("not-a-jwt")
	assert.True(t, apperrors.IsNotAuthenticated(err))
}
