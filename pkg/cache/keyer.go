package cache

// Keyer derives cache keys for the GitLab client.
type Keyer interface {
	// ListingKey keys a decoded project listing by API base URL and
	// rendered query. Different base URLs never share entries.
	ListingKey(baseURL, query string) string
}

// DefaultKeyer produces unscoped keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ListingKey returns "listing:<sha256 of base URL and query>".
func (DefaultKeyer) ListingKey(baseURL, query string) string {
	return hashKey("listing", baseURL, query)
}

// ScopedKeyer wraps a Keyer with a prefix so that different credentials
// never read each other's cached responses.
//
// Example usage:
//
//	// Keys for a user's private projects
//	keyer := NewScopedKeyer(NewDefaultKeyer(), TokenScope(token))
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ListingKey generates a prefixed key for listing caching.
func (k *ScopedKeyer) ListingKey(baseURL, query string) string {
	return k.prefix + k.inner.ListingKey(baseURL, query)
}

// TokenScope returns a key prefix derived from an access token, or "" for
// unauthenticated access. Only a hash fragment of the token appears in keys.
func TokenScope(token string) string {
	if token == "" {
		return ""
	}
	return "token:" + Hash([]byte(token))[:16] + ":"
}
