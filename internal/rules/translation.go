package rules

import (
	"sort"

	"biblebee/internal/domain"
)

// ResolveDisplayText picks which translation of a scripture to show.
// Preference order: the household's preferred code, the cycle's primary
// code, then the first available code in sorted order. Missing text degrades
// to an empty string plus the primary code; this never fails.
func ResolveDisplayText(s *domain.Scripture, preferredCode, primaryCode string) (text, code string) {
	if preferredCode != "" {
		if t, ok := s.Texts[preferredCode]; ok && t != "" {
			return t, preferredCode
		}
	}
	if primaryCode != "" {
		if t, ok := s.Texts[primaryCode]; ok && t != "" {
			return t, primaryCode
		}
	}

	codes := make([]string, 0, len(s.Texts))
	for c, t := range s.Texts {
		if t != "" {
			codes = append(codes, c)
		}
	}
	sort.Strings(codes)
	if len(codes) > 0 {
		return s.Texts[codes[0]], codes[0]
	}
	return "", primaryCode
}
