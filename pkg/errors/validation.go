package errors

import (
	"net/url"
	"strings"
	"unicode"
)

// maxSearchLength bounds the search term forwarded to the project listing.
const maxSearchLength = 255

// ValidateURL validates a base URL for the remote API.
// It ensures the URL parses, uses http or https, and names a host.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidURL, "URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidURL, "URL must use http or https scheme")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return Wrap(ErrCodeInvalidURL, err, "malformed URL %q", rawURL)
	}
	if u.Host == "" {
		return New(ErrCodeInvalidURL, "URL must include a host")
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return New(ErrCodeInvalidURL, "base URL cannot carry a query or fragment")
	}

	return nil
}

// ValidateSearch validates a project search term.
// An empty term is valid and means "no search".
//
// Validation rules:
//   - Maximum length of 255 bytes
//   - No control characters (including null bytes and newlines)
func ValidateSearch(term string) error {
	if len(term) > maxSearchLength {
		return New(ErrCodeInvalidInput, "search term too long (max %d characters)", maxSearchLength)
	}

	for _, r := range term {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "search term contains invalid control characters")
		}
	}

	return nil
}

// ValidateToken validates a personal access token.
// An empty token is valid and means unauthenticated access.
func ValidateToken(token string) error {
	if strings.IndexFunc(token, unicode.IsSpace) >= 0 {
		return New(ErrCodeInvalidConfig, "token cannot contain whitespace")
	}
	return nil
}
