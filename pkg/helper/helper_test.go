package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidSlug(t *testing.T) {
	valid := []string{"tech", "tech-community", "a1-b2-c3"}
	for _, slug := range valid {
		assert.True(t, IsValidSlug(slug), slug)
	}

	invalid := []string{"", "Tech", "tech--community", "-tech", "tech-", "tech community", "tech_community"}
	for _, slug := range invalid {
		assert.False(t, IsValidSlug(slug), slug)
	}
}

func TestParseSlugList(t *testing.T) {
	assert.Equal(t, []string{"tech", "art"}, ParseSlugList("tech,art"))
	assert.Equal(t, []string{"tech"}, ParseSlugList(" tech , "))
	assert.Nil(t, ParseSlugList(""))
}

func TestSecondLevelDomain(t *testing.T) {
	assert.Equal(t, "example", SecondLevelDomain("https://calendar.example.org"))
	assert.Equal(t, "example", SecondLevelDomain("https://example.org/path"))
	assert.Equal(t, "localhost", SecondLevelDomain("http://localhost:8080"))
	assert.Equal(t, "calendar", SecondLevelDomain("not a url"))
}

func TestStringInSlice(t *testing.T) {
	assert.True(t, StringInSlice("a", []string{"a", "b"}))
	assert.False(t, StringInSlice("c", []string{"a", "b"}))
}
