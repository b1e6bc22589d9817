package passpkg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCheck(t *testing.T) {
	password := "correct horse battery staple"

	hashed1, err := Hash(password)
	require.NoError(t, err)
	require.NotEmpty(t, hashed1)

	require.NoError(t, Check(password, hashed1))

	err = Check("wrong password", hashed1)
	require.EqualError(t, err, bcrypt.ErrMismatchedHashAndPassword.Error())

	// Hashing the same password twice must produce different salts.
	hashed2, err := Hash(password)
	require.NoError(t, err)
	require.NotEqual(t, hashed1, hashed2)
}

func TestHashTooLongPassword(t *testing.T) {
	// bcrypt rejects passwords longer than 72 bytes.
	_, err := Hash(strings.Repeat("x", 73))
	require.Error(t, err)
}
