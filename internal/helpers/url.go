package helpers

import (
	"net/url"
	"path"
	"sort"
	"strings"
)

var trackingQueryParams = map[string]struct{}{
	"gclid":   {},
	"dclid":   {},
	"fbclid":  {},
	"msclkid": {},
	"igshid":  {},
}

// NormalizeURL reduces a URL string to a stable key for deduplication.
// It drops the scheme, lowercases the host, removes default ports,
// strips fragments and tracking query parameters (utm_*, gclid, fbclid, etc.),
// sorts the remaining query deterministically and trims any trailing slash,
// so that http/https and share-link variants of the same page collapse to one
// key. Strings that do not parse as URLs come back trimmed but otherwise
// unchanged so they still work as map keys.
func NormalizeURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	parsed, err := parseURLPreserveHost(trimmed)
	if err != nil {
		return trimmed
	}

	host := strings.ToLower(parsed.Host)
	if host == "" {
		return trimmed
	}
	if idx := strings.LastIndex(host, ":"); idx != -1 {
		port := host[idx+1:]
		if port == "80" || port == "443" {
			host = host[:idx]
		}
	}

	cleanPath := parsed.Path
	if cleanPath != "" {
		cleanPath = path.Clean(cleanPath)
		if cleanPath == "." {
			cleanPath = ""
		}
		if cleanPath != "" && !strings.HasPrefix(cleanPath, "/") {
			cleanPath = "/" + cleanPath
		}
	}
	cleanPath = strings.TrimSuffix(cleanPath, "/")

	query := parsed.Query()
	for key := range query {
		lower := strings.ToLower(key)
		if strings.HasPrefix(lower, "utm_") {
			query.Del(key)
			continue
		}
		if _, drop := trackingQueryParams[lower]; drop {
			query.Del(key)
		}
	}

	var b strings.Builder
	b.WriteString(host)
	b.WriteString(cleanPath)
	if len(query) > 0 {
		keys := make([]string, 0, len(query))
		for key := range query {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		b.WriteByte('?')
		first := true
		for _, key := range keys {
			values := append([]string(nil), query[key]...)
			sort.Strings(values)
			for _, value := range values {
				if !first {
					b.WriteByte('&')
				}
				first = false
				b.WriteString(url.QueryEscape(key))
				if value != "" {
					b.WriteByte('=')
					b.WriteString(url.QueryEscape(value))
				}
			}
		}
	}
	return b.String()
}

// parseURLPreserveHost attempts to parse raw into a url.URL, handling schemeless URLs.
func parseURLPreserveHost(raw string) (*url.URL, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if parsed.Scheme == "" && parsed.Host == "" {
		// Attempt schemeless format like example.com/path or //example.com/path.
		if strings.HasPrefix(raw, "//") {
			return url.Parse("https:" + raw)
		}
		return url.Parse("https://" + raw)
	}
	return parsed, nil
}
