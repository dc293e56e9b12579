package cache

import "strings"

// Key builds a deterministic cache key from an operation name and its
// parameters. Callers must normalize order-insensitive parameters (such
// as coin ID lists) before passing them in.
func Key(op string, parts ...string) string {
	if len(parts) == 0 {
		return op
	}
	return op + ":" + strings.Join(parts, ":")
}
