package session

import (
	"strings"

	"github.com/collabverse/collabverse/internal/feature"
)

// registrationKeys are the legacy environment variables gating the demo
// registration/login path, checked in order.
var registrationKeys = []string{"DEMO_AUTH_ENABLED", "PUBLIC_DEMO_AUTH_ENABLED"}

// PolicyConfig provides environment-based configuration for the demo
// auth policy.
type PolicyConfig struct {
	// AdminEmails lists identities that are granted elevated access
	// independent of any stored role or membership.
	AdminEmails []string `env:"DEMO_ADMIN_EMAILS" envSeparator:"," envDefault:"admin@collabverse.test"`
}

// Policy answers deployment-level questions about demo authentication:
// whether registration is open at all, and which identities count as
// admins.
type Policy struct {
	flags       *feature.Resolver
	adminEmails map[string]struct{}
}

// NewPolicy creates a policy from configuration. The resolver decides the
// registration gate from the environment.
func NewPolicy(cfg PolicyConfig, flags *feature.Resolver) *Policy {
	admins := make(map[string]struct{}, len(cfg.AdminEmails))
	for _, email := range cfg.AdminEmails {
		email = strings.ToLower(strings.TrimSpace(email))
		if email != "" {
			admins[email] = struct{}{}
		}
	}
	return &Policy{flags: flags, adminEmails: admins}
}

// RegistrationOpen reports whether the demo registration/login path is
// permitted in this deployment. Defaults to open when no gate variable is
// set; the registration endpoint answers 403 when closed.
func (p *Policy) RegistrationOpen() bool {
	return p.flags.ResolveBool(registrationKeys, true)
}

// IsAdminEmail reports whether the email is on the configured admin
// allow-list. The match is case-insensitive. Callers use this to grant
// the elevated finance role and to short-circuit membership lookups.
func (p *Policy) IsAdminEmail(email string) bool {
	_, ok := p.adminEmails[strings.ToLower(strings.TrimSpace(email))]
	return ok
}
