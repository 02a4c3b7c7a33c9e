package feature

import "strings"

// ResolveBool resolves a legacy boolean variable from an ordered list of
// candidate environment names. The first candidate that is set to a
// non-empty value decides the result: a truthy token ("1", "true", "yes",
// "on") yields true, a falsy token ("0", "false", "no", "off") yields
// false, and any other value yields the fallback immediately without
// inspecting later candidates. Tokens are trimmed and case-insensitive.
//
// When no candidate is set, the fallback is returned. An ambiguous value
// resolving to the fallback rather than an error keeps the route available
// even when the deployment environment is misconfigured.
func (r *Resolver) ResolveBool(keys []string, fallback bool) bool {
	for _, key := range keys {
		v, ok := r.lookup(key)
		if !ok {
			continue
		}
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		switch v {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		default:
			return fallback
		}
	}
	return fallback
}
