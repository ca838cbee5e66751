package entities

import (
	"encoding/json"
	"errors"
	"net/url"
	"strings"
)

// ConsentCookieName is the cookie written by the consent banner.
const ConsentCookieName = "cc_cookie"

var ErrInvalidConsentCookie = errors.New("invalid consent cookie")

type consentCookie struct {
	Categories []string `json:"categories"`
}

// ParseConsentCookie reads the categories accepted in the consent banner
// cookie. The value may be URL-encoded.
func ParseConsentCookie(raw string) (ConsentSet, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return NewConsentSet(), ErrInvalidConsentCookie
	}
	if decoded, err := url.QueryUnescape(raw); err == nil {
		raw = decoded
	}

	var c consentCookie
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return NewConsentSet(), errors.Join(ErrInvalidConsentCookie, err)
	}
	return NewConsentSet(c.Categories...), nil
}
