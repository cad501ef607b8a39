package images

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackURL_Deterministic(t *testing.T) {
	a := FallbackURL("Luigi's Trattoria", "restaurant")
	b := FallbackURL("Luigi's Trattoria", "restaurant")
	assert.Equal(t, a, b)
}

func TestFallbackURL_VariesByInput(t *testing.T) {
	a := FallbackURL("Luigi's Trattoria", "restaurant")
	b := FallbackURL("Kayak Rentals", "restaurant")
	assert.NotEqual(t, a, b)
}

func TestFallbackURL_CategoryKeywords(t *testing.T) {
	tests := []struct {
		name     string
		category string
		keyword  string
	}{
		{name: "restaurant", category: "restaurant", keyword: "restaurant,food"},
		{name: "activity", category: "activity", keyword: "adventure,outdoors"},
		{name: "cafe", category: "cafe", keyword: "coffee,cafe"},
		{name: "bar", category: "bar", keyword: "bar,cocktail"},
		{name: "case and whitespace normalized", category: " Restaurant ", keyword: "restaurant,food"},
		{name: "unknown falls back", category: "museum", keyword: "city,evening"},
		{name: "empty falls back", category: "", keyword: "city,evening"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url := FallbackURL("Some Place", tt.category)
			assert.True(t, strings.HasPrefix(url, "https://loremflickr.com/800/600/"+tt.keyword+"?lock="), url)
		})
	}
}
