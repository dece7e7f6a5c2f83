package sample

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Language keys the farmer screen's translation table.
type Language string

const (
	English Language = "english"
	Hindi   Language = "hindi"
)

// Languages lists the selectable keys in selector order.
var Languages = []Language{English, Hindi}

// Labels is one translated string set.
type Labels struct {
	Weather  string
	Soil     string
	Alerts   string
	Market   string
	Forecast string
	Settings string
}

var translations = map[Language]Labels{
	English: {
		Weather:  "Weather",
		Soil:     "Soil Health",
		Alerts:   "Alerts",
		Market:   "Market Prices",
		Forecast: "7-Day Forecast",
		Settings: "Settings",
	},
	Hindi: {
		Weather:  "मौसम",
		Soil:     "मिट्टी की सेहत",
		Alerts:   "चेतावनी",
		Market:   "बाजार के भाव",
		Forecast: "7-दिन का पूर्वानुमान",
		Settings: "सेटिंग",
	},
}

var displayNames = map[Language]string{
	English: "English",
	Hindi:   "हिंदी",
}

// DisplayName is the selector label, written in the language itself.
func (l Language) DisplayName() string {
	if n, ok := displayNames[l]; ok {
		return n
	}
	return string(l)
}

// Other returns the remaining key of the two-key table.
func (l Language) Other() Language {
	if l == Hindi {
		return English
	}
	return Hindi
}

// Translate returns the label set for l, falling back to English.
func Translate(l Language) Labels {
	if t, ok := translations[l]; ok {
		return t
	}
	return translations[English]
}

// ParseLanguage accepts a table key ("hindi"), an ISO code ("hi") or any
// BCP-47 tag whose base language is in the table ("hi-IN").
func ParseLanguage(s string) (Language, error) {
	key := Language(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := translations[key]; ok {
		return key, nil
	}

	tag, err := language.Parse(string(key))
	if err != nil {
		return "", fmt.Errorf("unknown language %q: %w", s, err)
	}
	base, _ := tag.Base()
	switch base.String() {
	case "en":
		return English, nil
	case "hi":
		return Hindi, nil
	}
	return "", fmt.Errorf("unsupported language %q (valid: english, hindi)", s)
}
