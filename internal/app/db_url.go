package app

import (
	"net/url"
	"strings"
)

const preparedBinaryParam = "disable_prepared_binary_result"

// NormalizeDBURL sets disable_prepared_binary_result=yes on the DSN when
// disable is true and the DSN does not choose a value itself. Both URL and
// keyword/value DSNs are accepted; anything unparsable is returned as is.
func NormalizeDBURL(raw string, disable bool) string {
	if !disable {
		return raw
	}

	if u, ok := parseDBURL(raw); ok {
		q := u.Query()
		if q.Get(preparedBinaryParam) != "" {
			return raw
		}
		q.Set(preparedBinaryParam, "yes")
		u.RawQuery = q.Encode()
		return u.String()
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || !strings.Contains(trimmed, "=") {
		return raw
	}
	if _, ok := keywordValue(trimmed, preparedBinaryParam); ok {
		return raw
	}
	return trimmed + " " + preparedBinaryParam + "=yes"
}

func dbNameFromURL(raw string) string {
	if u, ok := parseDBURL(raw); ok {
		if name := strings.TrimSpace(strings.TrimPrefix(u.Path, "/")); name != "" {
			return name
		}
	}
	name, _ := keywordValue(raw, "dbname")
	return name
}

// redactDBURL hides the password of a URL DSN for logging.
func redactDBURL(raw string) string {
	if u, ok := parseDBURL(raw); ok {
		return u.Redacted()
	}
	return "<dsn>"
}

func parseDBURL(raw string) (*url.URL, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u == nil || u.Scheme == "" {
		return nil, false
	}
	return u, true
}

func keywordValue(dsn, key string) (string, bool) {
	prefix := key + "="
	for _, token := range strings.Fields(dsn) {
		value, found := strings.CutPrefix(token, prefix)
		if !found {
			continue
		}
		value = strings.Trim(strings.TrimSpace(value), `"'`)
		if value != "" {
			return value, true
		}
	}
	return "", false
}
