// Package images derives fallback image URLs for recommendations that come
// back from the engine without one.
package images

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// Category-themed source endpoints. The lock parameter pins the returned image,
// so the same (name, category) pair always resolves to the same picture.
var categoryKeywords = map[string]string{
	"restaurant": "restaurant,food",
	"activity":   "adventure,outdoors",
	"cafe":       "coffee,cafe",
	"bar":        "bar,cocktail",
}

const defaultKeyword = "city,evening"

// FallbackURL returns a deterministic image URL for a recommendation missing
// one. Pure function of (name, category).
func FallbackURL(name, category string) string {
	keyword, ok := categoryKeywords[strings.ToLower(strings.TrimSpace(category))]
	if !ok {
		keyword = defaultKeyword
	}

	h := fnv.New32a()
	h.Write([]byte(name))
	h.Write([]byte{'|'})
	h.Write([]byte(category))
	seed := h.Sum32() % 1000

	return fmt.Sprintf("https://loremflickr.com/800/600/%s?lock=%d", keyword, seed)
}
