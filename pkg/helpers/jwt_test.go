package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_IssueAndVerify(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("super-secret", time.Hour)

	tok, exp, err := m.Issue("admin-123")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	adminID, err := m.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "admin-123", adminID)
}

func TestTokenManager_Expired(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("secret", -1*time.Second)

	tok, _, err := m.Issue("a1")
	require.NoError(t, err)

	_, err = m.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenManager("right-secret", time.Hour)
	verifier := NewTokenManager("wrong-secret", time.Hour)

	tok, _, err := issuer.Issue("a2")
	require.NoError(t, err)

	_, err = verifier.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Malformed(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("k", time.Hour)

	_, err := m.Verify("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
