package identity

import (
	"testing"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mintToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestDecodeSubject(t *testing.T) {
	token := mintToken(t, jwt.MapClaims{"sub": "101"})

	id, err := Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "101", id.Subject)
}

func TestDecodeIgnoresSignature(t *testing.T) {
	// The client only reads the payload; the backend is the verifier.
	token := mintToken(t, jwt.MapClaims{"sub": "teacher1"}) + "tampered"

	id, err := Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "teacher1", id.Subject)
}

func TestDecodeMalformedToken(t *testing.T) {
	_, err := Decode("not-a-jwt")
	assert.Error(t, err)

	_, err = Decode("")
	assert.Error(t, err)
}

func TestDecodeMissingSubject(t *testing.T) {
	token := mintToken(t, jwt.MapClaims{"role": "student"})

	_, err := Decode(token)
	assert.Error(t, err)
}
