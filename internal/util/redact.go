package util

import (
	"net/url"
	"regexp"
	"strings"
)

var reSecretParam = regexp.MustCompile(`(?i)^(access_?key|api_?key|apikey|key|token|secret|signature)$`)

// RedactURL masks credentials and secret-looking query parameters so the
// endpoint can be logged.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	if u.User != nil {
		u.User = url.User("redacted")
	}
	q := u.Query()
	changed := false
	for k := range q {
		if reSecretParam.MatchString(k) {
			q.Set(k, "redacted")
			changed = true
		}
	}
	if changed {
		u.RawQuery = q.Encode()
	}
	return strings.TrimSpace(u.String())
}
