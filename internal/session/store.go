package session

import (
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// Store abstracts where session records live. Implementations must be
// safe for concurrent use. None of the operations can fail: issuing a
// token is pure, and an unresolvable token means "no session", never an
// error.
type Store interface {
	// Issue turns a session into a bearer token.
	Issue(sess Session) string
	// Resolve returns the session behind a token, or nil.
	Resolve(token string) *Session
	// Revoke invalidates a token where the backing supports it.
	Revoke(token string)
}

// CodecStore is the default store: the token embeds the whole record, so
// the cookie is the session store and the server keeps nothing. Revoke is
// a no-op — clearing the cookie is the revocation.
type CodecStore struct {
	codec *Codec
}

// NewCodecStore wraps a codec as a Store.
func NewCodecStore(codec *Codec) *CodecStore {
	return &CodecStore{codec: codec}
}

func (s *CodecStore) Issue(sess Session) string {
	return s.codec.Encode(sess)
}

func (s *CodecStore) Resolve(token string) *Session {
	return s.codec.Decode(token)
}

func (s *CodecStore) Revoke(string) {}

// MemoryStore keeps session records server-side behind random tokens.
// It exists to prove the Store contract survives a real backing table and
// to give tests a revocable store.
type MemoryStore struct {
	records *gocache.Cache
	maxAge  time.Duration
}

// NewMemoryStore creates an in-process store whose records expire after
// the given max age. Zero means records never expire.
func NewMemoryStore(maxAge time.Duration) *MemoryStore {
	ttl := maxAge
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	return &MemoryStore{
		records: gocache.New(ttl, 10*time.Minute),
		maxAge:  maxAge,
	}
}

func (s *MemoryStore) Issue(sess Session) string {
	token := uuid.NewString()
	s.records.SetDefault(token, sess)
	return token
}

func (s *MemoryStore) Resolve(token string) *Session {
	if token == "" {
		return nil
	}
	v, ok := s.records.Get(token)
	if !ok {
		return nil
	}
	sess, ok := v.(Session)
	if !ok {
		return nil
	}
	return &sess
}

func (s *MemoryStore) Revoke(token string) {
	s.records.Delete(token)
}
