package rules

import (
	"testing"

	"biblebee/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestResolveDisplayText_PreferredWins(t *testing.T) {
	s := &domain.Scripture{Texts: map[string]string{"NIV": "niv text", "KJV": "kjv text"}}
	text, code := ResolveDisplayText(s, "KJV", "NIV")
	assert.Equal(t, "kjv text", text)
	assert.Equal(t, "KJV", code)
}

func TestResolveDisplayText_MissingPreferredFallsBack(t *testing.T) {
	// Household prefers a translation the scripture does not carry.
	s := &domain.Scripture{Texts: map[string]string{"NIV": "niv text", "KJV": "kjv text"}}
	text, code := ResolveDisplayText(s, "NVI", "NIV")
	assert.Equal(t, "niv text", text)
	assert.Equal(t, "NIV", code)
}

func TestResolveDisplayText_FirstAvailableWhenPrimaryMissing(t *testing.T) {
	s := &domain.Scripture{Texts: map[string]string{"KJV": "kjv text", "ESV": "esv text"}}
	text, code := ResolveDisplayText(s, "", "NIV")
	// Deterministic: sorted order picks ESV.
	assert.Equal(t, "esv text", text)
	assert.Equal(t, "ESV", code)
}

func TestResolveDisplayText_NoTexts(t *testing.T) {
	s := &domain.Scripture{Texts: map[string]string{}}
	text, code := ResolveDisplayText(s, "NVI", "NIV")
	assert.Equal(t, "", text)
	assert.Equal(t, "NIV", code)
}

func TestResolveDisplayText_EmptyTextSkipped(t *testing.T) {
	s := &domain.Scripture{Texts: map[string]string{"NIV": "", "KJV": "kjv text"}}
	text, code := ResolveDisplayText(s, "NIV", "NIV")
	assert.Equal(t, "kjv text", text)
	assert.Equal(t, "KJV", code)
}
