package receipt_test

import (
	"strings"
	"testing"

	"gooddelivery/internal/adapters/out/receipt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTSigner(t *testing.T) {
	t.Run("should create signer with a key", func(t *testing.T) {
		s, err := receipt.NewJWTSigner([]byte("secret"))

		require.NoError(t, err)
		assert.NotNil(t, s)
	})

	t.Run("should fail with empty key", func(t *testing.T) {
		s, err := receipt.NewJWTSigner(nil)

		require.Error(t, err)
		assert.Equal(t, receipt.ErrSigningKeyIsRequired, err)
		assert.Nil(t, s)
	})
}

func TestJWTSigner_SignAndVerify(t *testing.T) {
	ctx := t.Context()
	payload := []byte(`{"id":"d-1","user":"u-1","delivery_point":"p-1"}`)

	t.Run("should round-trip the payload", func(t *testing.T) {
		s, err := receipt.NewJWTSigner([]byte("secret"))
		require.NoError(t, err)

		token, err := s.Sign(ctx, payload)
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		got, err := s.Verify(ctx, token)
		require.NoError(t, err)
		assert.JSONEq(t, string(payload), string(got))
	})

	t.Run("should reject a token signed with another key", func(t *testing.T) {
		signer, err := receipt.NewJWTSigner([]byte("secret"))
		require.NoError(t, err)
		other, err := receipt.NewJWTSigner([]byte("different"))
		require.NoError(t, err)

		token, err := signer.Sign(ctx, payload)
		require.NoError(t, err)

		_, err = other.Verify(ctx, token)
		require.Error(t, err)
	})

	t.Run("should reject a tampered token", func(t *testing.T) {
		s, err := receipt.NewJWTSigner([]byte("secret"))
		require.NoError(t, err)

		token, err := s.Sign(ctx, payload)
		require.NoError(t, err)

		parts := strings.Split(token, ".")
		require.Len(t, parts, 3)
		tampered := parts[0] + ".eyJyZWNlaXB0Ijp7fX0." + parts[2]

		_, err = s.Verify(ctx, tampered)
		require.Error(t, err)
	})

	t.Run("should reject garbage", func(t *testing.T) {
		s, err := receipt.NewJWTSigner([]byte("secret"))
		require.NoError(t, err)

		_, err = s.Verify(ctx, "not-a-token")
		require.Error(t, err)
	})
}
