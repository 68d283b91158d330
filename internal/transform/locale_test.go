package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveLocale(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"", "en"},
		{"en", "en"},
		{"en-US", "en"},
		{"de", "de"},
		{"de-AT", "de"},
		{"pt-BR", "pt"},
		{"fr-CA", "fr"},
		{"not a tag", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveLocale(tt.tag))
		})
	}
}

func TestMonthNamesCoverEverySupportedLocale(t *testing.T) {
	for _, locale := range supportedLocales {
		names, ok := monthNames[locale]
		assert.True(t, ok, "missing month names for %s", locale)
		for _, name := range names {
			assert.NotEmpty(t, name)
		}
		assert.NotEmpty(t, presentLabels[locale], "missing present label for %s", locale)
	}
}
