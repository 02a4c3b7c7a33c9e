package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collabverse/collabverse/internal/session"
)

func TestCodecStore(t *testing.T) {
	t.Parallel()

	store := session.NewCodecStore(session.NewCodec())
	sess := session.New("ann@test.io", session.RoleUser)

	token := store.Issue(sess)
	require.NotEmpty(t, token)

	got := store.Resolve(token)
	require.NotNil(t, got)
	assert.Equal(t, sess, *got)

	// Stateless store: revocation happens by clearing the cookie, so the
	// token itself stays resolvable.
	store.Revoke(token)
	assert.NotNil(t, store.Resolve(token))

	assert.Nil(t, store.Resolve("bogus"))
	assert.Nil(t, store.Resolve(""))
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore(time.Hour)
	sess := session.New("ann@test.io", session.RoleAdmin)

	token := store.Issue(sess)
	require.NotEmpty(t, token)

	got := store.Resolve(token)
	require.NotNil(t, got)
	assert.Equal(t, sess, *got)

	// Tokens are random handles, not encodings of the record.
	other := store.Issue(sess)
	assert.NotEqual(t, token, other)

	store.Revoke(token)
	assert.Nil(t, store.Resolve(token))
	assert.NotNil(t, store.Resolve(other))

	assert.Nil(t, store.Resolve(""))
	assert.Nil(t, store.Resolve("unknown"))
}
