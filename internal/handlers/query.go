package handlers

import (
	"net/http"
	"strconv"
	"strings"
)

// Integer query param. Missing param gives def, malformed gives 0 so it fails validation
func queryInt(r *http.Request, key string, def int) int {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return def
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

func queryString(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

// Comma separated list: 'a, b,,c' -> [a b c]
func queryList(r *http.Request, key string) []string {
	var items []string
	for item := range strings.SplitSeq(queryString(r, key), ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
