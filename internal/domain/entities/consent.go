package entities

import (
	"sort"
	"strings"
)

// ConsentCategory is a permission bucket granted or denied by the visitor in
// the cookie banner.
type ConsentCategory string

const (
	ConsentNecessary ConsentCategory = "necessary"
	ConsentAnalytics ConsentCategory = "analytics"
	ConsentMarketing ConsentCategory = "marketing"
)

// Google Consent Mode storage flags.
const (
	ConsentModeAnalyticsStorage  = "analytics_storage"
	ConsentModeAdStorage         = "ad_storage"
	ConsentModeAdUserData        = "ad_user_data"
	ConsentModeAdPersonalization = "ad_personalization"

	ConsentModeGranted = "granted"
	ConsentModeDenied  = "denied"
)

var knownConsentCategories = map[ConsentCategory]struct{}{
	ConsentNecessary: {},
	ConsentAnalytics: {},
	ConsentMarketing: {},
}

// consentModeMap lists the Consent Mode flags switched to granted by each
// category. Necessary grants nothing.
var consentModeMap = map[ConsentCategory][]string{
	ConsentAnalytics: {ConsentModeAnalyticsStorage},
	ConsentMarketing: {ConsentModeAdStorage, ConsentModeAdUserData, ConsentModeAdPersonalization},
}

// ConsentSet is an immutable snapshot of granted categories.
//
// Invariant: necessary is always present. Unknown category names are dropped.
// The zero value behaves like a set holding only necessary.
type ConsentSet struct {
	granted map[ConsentCategory]struct{}
}

func NewConsentSet(categories ...string) ConsentSet {
	granted := map[ConsentCategory]struct{}{ConsentNecessary: {}}
	for _, raw := range categories {
		c := ConsentCategory(strings.ToLower(strings.TrimSpace(raw)))
		if _, ok := knownConsentCategories[c]; ok {
			granted[c] = struct{}{}
		}
	}
	return ConsentSet{granted: granted}
}

func (s ConsentSet) Has(c ConsentCategory) bool {
	if c == ConsentNecessary {
		return true
	}
	_, ok := s.granted[c]
	return ok
}

// HasAny reports whether at least one of the given categories is granted.
func (s ConsentSet) HasAny(categories ...ConsentCategory) bool {
	for _, c := range categories {
		if s.Has(c) {
			return true
		}
	}
	return false
}

// Categories returns the granted categories in a stable order.
func (s ConsentSet) Categories() []ConsentCategory {
	out := []ConsentCategory{ConsentNecessary}
	for c := range s.granted {
		if c != ConsentNecessary {
			out = append(out, c)
		}
	}
	sort.Slice(out[1:], func(i, j int) bool { return out[1+i] < out[1+j] })
	return out
}

// ConsentMode maps the granted categories to Google Consent Mode flags.
func (s ConsentSet) ConsentMode() map[string]string {
	mode := map[string]string{
		ConsentModeAnalyticsStorage:  ConsentModeDenied,
		ConsentModeAdStorage:         ConsentModeDenied,
		ConsentModeAdUserData:        ConsentModeDenied,
		ConsentModeAdPersonalization: ConsentModeDenied,
	}
	for c := range s.granted {
		for _, flag := range consentModeMap[c] {
			mode[flag] = ConsentModeGranted
		}
	}
	return mode
}
