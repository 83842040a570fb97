package middleware

import (
	"net/http"
	"strings"

	"LOTTO_USER-SERVICE/internal/config"
)

// UsernameHeader is the legacy identity header kept for existing clients that
// predate token auth.
const UsernameHeader = "username"

// ResolveCaller resolves the caller's username for history endpoints.
//
// Order of trust: a verified Bearer token wins; a token that fails signature or
// expiry checks counts as no identity at all, never as an error. Without a
// usable token the legacy username header applies, and if that is also absent
// the configured guest identity is used when enabled. The second return value
// is false when no identity could be resolved.
func ResolveCaller(r *http.Request, cfg *config.Config) (string, bool) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) == 2 && tokenParts[0] == "Bearer" {
			if claims, err := ValidateToken(tokenParts[1], &cfg.JWT); err == nil {
				return claims.Username, true
			}
		}
	}

	if username := strings.TrimSpace(r.Header.Get(UsernameHeader)); username != "" {
		return username, true
	}

	if cfg.Guest.Enabled {
		return cfg.Guest.Username, true
	}

	return "", false
}
