package intl

import (
	"context"
	_ "embed"
	"encoding/json"
	"net/http"
	"strings"
)

type contextKey string

func (c contextKey) String() string {
	return "polaris/intl/" + string(c)
}

const ctxKeyLanguage = contextKey("languageKey")

// ToContext adds language preferences to the current supplied context.
func ToContext(ctx context.Context, languages []string) context.Context {
	return context.WithValue(ctx, ctxKeyLanguage, languages)
}

// FromContext extracts language preferences from the supplied context
// if any exist.
func FromContext(ctx context.Context) []string {
	languages, ok := ctx.Value(ctxKeyLanguage).([]string)
	if !ok {
		return nil
	}

	return languages
}

// ExtractLanguageFromHTTPRequest pulls language preferences from a
// request, preferring an explicit lang parameter over the
// Accept-Language header.
func ExtractLanguageFromHTTPRequest(req *http.Request) []string {
	var languages []string
	if lang := req.FormValue("lang"); lang != "" {
		languages = append(languages, lang)
	}

	if header := req.Header.Get("Accept-Language"); header != "" {
		for _, lang := range strings.Split(header, ",") {
			if lang = strings.TrimSpace(strings.SplitN(lang, ";", 2)[0]); lang != "" {
				languages = append(languages, lang)
			}
		}
	}

	return languages
}

//go:embed locales/en.json
var defaultLocaleData []byte

var defaultDictionary Dictionary

func init() {
	if err := json.Unmarshal(defaultLocaleData, &defaultDictionary); err != nil {
		panic("intl: embedded default dictionary is invalid: " + err.Error())
	}
}
