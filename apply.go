package querystring

import (
	"fmt"
	"net/url"
)

// Apply returns a copy of the URL with its query replaced by this query string
//
// Scheme, user info, host (including bracketed IPv6 literals), port, path and fragment are unchanged.
// If the query string is empty the resulting URL has no query at all (no trailing '?').
func (q *QueryString) Apply(u *url.URL) *url.URL {
	if u == nil {
		return nil
	}
	result := *u
	result.RawQuery = q.String()
	result.ForceQuery = false
	return &result
}

// ApplyString parses the raw URI, applies this query string to it and returns the reconstructed URI
func (q *QueryString) ApplyString(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("querystring: apply: %w", err)
	}
	return q.Apply(u).String(), nil
}
