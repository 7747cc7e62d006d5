package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastHasher keeps the tests quick.
func fastHasher() PasswordHasher {
	return &argon2Hasher{argonTime: 1, argonMemory: 1024, argonThreads: 1, argonKeyLen: 16}
}

func TestHashAndVerify(t *testing.T) {
	h := fastHasher()

	encoded, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$m=1024,t=1,p=1$"))

	ok, err := h.Verify("s3cret", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("wrong", encoded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHash_UsesFreshSalt(t *testing.T) {
	h := fastHasher()

	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestVerify_UsesEncodedParameters(t *testing.T) {
	encoded, err := fastHasher().Hash("pw")
	require.NoError(t, err)

	// a hasher with other defaults still verifies older hashes
	ok, err := NewPasswordHasher().Verify("pw", encoded)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerify_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
		wantErr error
	}{
		{name: "empty", encoded: "", wantErr: ErrMalformedHash},
		{name: "bcrypt", encoded: "$2a$10$abcdefghijklmnopqrstuv", wantErr: ErrMalformedHash},
		{name: "bad version", encoded: "$argon2id$v=16$m=1024,t=1,p=1$c2FsdA$a2V5", wantErr: ErrIncompatibleVersion},
		{name: "bad params", encoded: "$argon2id$v=19$m=x,t=1,p=1$c2FsdA$a2V5", wantErr: ErrMalformedHash},
		{name: "bad salt", encoded: "$argon2id$v=19$m=1024,t=1,p=1$!!$a2V5", wantErr: ErrMalformedHash},
		{name: "empty key", encoded: "$argon2id$v=19$m=1024,t=1,p=1$c2FsdA$", wantErr: ErrMalformedHash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := fastHasher().Verify("pw", tt.encoded)
			assert.False(t, ok)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
