package hmac_service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authgate/internal/authgate/adapters/services"
	"authgate/pkg/logger"
)

const (
	testHashingSecret = "test-hashing-secret"

	msgErrorCreatingTestLogger = "should create test logger without errors"
	msgDigestDeterministic     = "same password should always produce the same digest"
	msgDigestFixedLength       = "digest should be 64 hex characters"
	msgDigestMatchesVector     = "digest should match the precomputed vector"
)

func TestHash(t *testing.T) {
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err, msgErrorCreatingTestLogger)

	ctx := logger.NewContext(context.Background(), testLogger)

	service := services.NewHMAC(testHashingSecret)

	t.Run("digest is deterministic", func(t *testing.T) {
		first := service.Hash(ctx, "Radium1x")
		second := service.Hash(ctx, "Radium1x")

		assert.Equal(t, first, second, msgDigestDeterministic)
	})

	t.Run("digest has fixed length", func(t *testing.T) {
		tests := []string{"", "a", "Radium1x", "Sup3rSecret", "очень длинный пароль с юникодом Ω"}

		for _, password := range tests {
			digest := service.Hash(ctx, password)
			assert.Len(t, digest, 64, msgDigestFixedLength)
		}
	})

	t.Run("digest matches known vectors", func(t *testing.T) {
		vectors := map[string]string{
			"":            "5ca881267e1426aae11812455c0d71d9f9d40018cb5ebb5288897300ef3f2dcc",
			"Radium1x":    "ac58cbfd4cf4c49542fabaf0a3c02e135b7fdfa374e6ef853f0c8ad425abf189",
			"Sup3rSecret": "7a6df75a43ccb1d65b0b16f517270919ca60bb56df6e3723c30bddfe891d5127",
		}

		for password, expected := range vectors {
			assert.Equal(t, expected, service.Hash(ctx, password), msgDigestMatchesVector)
		}
	})

	t.Run("different secrets produce different digests", func(t *testing.T) {
		other := services.NewHMAC("another-hashing-secret")

		assert.NotEqual(t, service.Hash(ctx, "Radium1x"), other.Hash(ctx, "Radium1x"))
	})
}
