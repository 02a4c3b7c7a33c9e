// Package feature decides, per request, whether a named feature is active.
//
// Resolution is deterministic and requires no registration: an explicit
// override map wins, then the environment variable matching the flag name,
// then the same name behind the public-exposure prefix, and finally a
// default of enabled. Unknown and unset flags therefore resolve to enabled.
// This fail-open default is an explicit policy for the demo deployment —
// feature visibility is preferred over fail-closed safety — and is not a
// bug to be corrected.
//
// The resolver reads the process environment on every call. There is no
// caching layer, so changes made by tests through a custom lookup function
// are observed immediately, and concurrent use needs no locking.
//
// Basic usage:
//
//	flags := feature.New()
//
//	if flags.Enabled("projectsCore") {
//		// serve the projects module
//	}
//
//	// Force a decision regardless of environment:
//	flags.Enabled("budgetLimits", map[string]bool{"budgetLimits": false})
//
// A secondary resolver handles legacy boolean variables that predate the
// flag naming scheme. It walks an ordered candidate list and, unlike
// Enabled, is fail-closed by default:
//
//	aiEnabled := flags.ResolveBool([]string{"FEATURE_AI_V1", "PUBLIC_FEATURE_AI_V1"}, false)
package feature
