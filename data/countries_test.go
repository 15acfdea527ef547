package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMentionsEUCountry(t *testing.T) {
	assert.True(t, MentionsEUCountry("Frankreich"))
	assert.True(t, MentionsEUCountry("Tomaten aus Spanien"))
	assert.False(t, MentionsEUCountry("Brasilien"))
	assert.False(t, MentionsEUCountry("Schweiz"))
	assert.False(t, MentionsEUCountry(""))
}

func TestCatalogVocabulary(t *testing.T) {
	assert.True(t, ValidCategory("Gemüse"))
	assert.False(t, ValidCategory("Snacks"))

	assert.True(t, ValidOrigin(OriginRegional))
	assert.False(t, ValidOrigin("Mars"))

	assert.True(t, ValidLabel("Bio"))
	assert.False(t, ValidLabel("Premium"))
}
