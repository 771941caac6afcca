package helpers

import (
	"net/http"
	"strings"
)

// QueryList reads a comma-separated query parameter. Blank items are dropped
// and duplicates keep their first position. A missing parameter yields nil.
func QueryList(r *http.Request, key string) []string {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
