// Package session implements the demo authentication record and its codec.
//
// A Session carries the demo identity (email, role, issuance time) and is
// serialized entirely into an opaque cookie token; there is no server-side
// session table. The codec is reversible and tamper-evident but explicitly
// not a cryptographic security boundary — this is a demo/non-production
// auth mechanism and is documented as such.
//
// Decode is total: any malformed, truncated or expired token yields nil
// rather than an error. The function sits on the hot path of every
// authenticated page load, where a panic or error would take down
// rendering; "no session" is always the worst outcome.
//
// The Store interface abstracts where session records live so a
// production-grade rewrite could swap in a real backing table without
// changing the encode/decode contract. CodecStore is the default: the
// cookie is the store. MemoryStore demonstrates the swap path.
package session
