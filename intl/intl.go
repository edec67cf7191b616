// Package intl provides the translation service handed out through the
// assembled polaris context. An optional override dictionary is merged
// over the built-in defaults at lookup time, and rendering is delegated
// to go-i18n for interpolation and pluralization.
package intl

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pitabwire/util"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// ErrMissingTranslation is returned when a message ID resolves in
// neither the override dictionary nor the built-in defaults.
var ErrMissingTranslation = errors.New("intl: missing translation")

// Dictionary is a nested mapping from keys to string templates or
// further dictionaries. Values must not be mutated after being handed
// to New.
type Dictionary map[string]any

type config struct {
	DefaultLocale string `env:"POLARIS_LOCALE" envDefault:"en"`
}

// Intl resolves message IDs against an override dictionary with
// leaf-granular fallback onto the built-in defaults. The override is
// held as supplied, lookups walk it on every call.
type Intl struct {
	override      Dictionary
	defaultLocale string
	bundle        *i18n.Bundle
	loadedFiles   []string
}

// New builds a translation service over the supplied override
// dictionary. A nil override behaves identically to the built-in
// defaults. Services built from structurally equal overrides are Equal.
func New(override Dictionary) *Intl {
	cfg, err := env.ParseAs[config]()
	if err != nil || cfg.DefaultLocale == "" {
		cfg.DefaultLocale = "en"
	}

	bundle := i18n.NewBundle(language.Make(cfg.DefaultLocale))
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	return &Intl{
		override:      override,
		defaultLocale: cfg.DefaultLocale,
		bundle:        bundle,
	}
}

// DefaultLocale returns the locale used when the context carries no
// language preference.
func (t *Intl) DefaultLocale() string {
	return t.defaultLocale
}

// LoadLocaleFile loads a go-i18n message file (toml, yaml or json,
// named messages.<lang>.<ext>) so translate calls can serve languages
// beyond the default locale.
func (t *Intl) LoadLocaleFile(path string) error {
	if _, err := t.bundle.LoadMessageFile(path); err != nil {
		return err
	}

	t.loadedFiles = append(t.loadedFiles, path)

	return nil
}

// Lookup resolves a dotted message ID to its raw template, consulting
// the override first and falling back to the built-in defaults at leaf
// granularity. Plural messages resolve to their "other" form.
func (t *Intl) Lookup(id string) (string, error) {
	msg, err := t.lookupMessage(id)
	if err != nil {
		return "", err
	}

	return msg.Other, nil
}

// Translate renders the message identified by id for the languages
// carried in ctx, falling back to the default locale.
func (t *Intl) Translate(ctx context.Context, id string) string {
	return t.TranslateWithMap(ctx, id, nil)
}

// TranslateWithMap renders a message with template data.
func (t *Intl) TranslateWithMap(ctx context.Context, id string, variables map[string]any) string {
	return t.TranslateWithMapAndCount(ctx, id, variables, 1)
}

// TranslateWithMapAndCount renders a message with template data and
// selects the plural form matching count. Unresolvable messages degrade
// to the message ID itself.
func (t *Intl) TranslateWithMapAndCount(
	ctx context.Context,
	id string,
	variables map[string]any,
	count int,
) string {
	preferred := FromContext(ctx)
	languages := make([]string, 0, len(preferred)+1)
	languages = append(languages, preferred...)
	languages = append(languages, t.defaultLocale)

	localizer := i18n.NewLocalizer(t.bundle, languages...)

	lc := &i18n.LocalizeConfig{
		MessageID:   id,
		PluralCount: count,
	}
	if len(variables) > 0 {
		lc.TemplateData = variables
	}

	msg, lookupErr := t.lookupMessage(id)
	if lookupErr == nil {
		lc.DefaultMessage = msg
	}

	translated, err := localizer.Localize(lc)
	if err != nil {
		util.Log(ctx).WithError(err).WithField("messageID", id).
			Warn("could not localize message")
		return id
	}

	return translated
}

// Equal reports whether two services resolve every message identically:
// structurally equal overrides, the same default locale and the same
// loaded locale files.
func (t *Intl) Equal(other *Intl) bool {
	if t == nil || other == nil {
		return t == other
	}

	return t.defaultLocale == other.defaultLocale &&
		reflect.DeepEqual(t.override, other.override) &&
		reflect.DeepEqual(t.loadedFiles, other.loadedFiles)
}

// lookupMessage resolves id against the override then the defaults. A
// string leaf becomes a single-form message; a mapping of CLDR plural
// categories becomes a plural message.
func (t *Intl) lookupMessage(id string) (*i18n.Message, error) {
	path := strings.Split(id, ".")

	if node, ok := resolve(t.override, path); ok {
		if msg, ok := nodeToMessage(id, node); ok {
			return msg, nil
		}
	}

	if node, ok := resolve(defaultDictionary, path); ok {
		if msg, ok := nodeToMessage(id, node); ok {
			return msg, nil
		}
	}

	return nil, ErrMissingTranslation
}

// resolve walks a dictionary along path. Any missing or non-dictionary
// intermediate node fails the walk, leaving fallback to the caller.
func resolve(dict Dictionary, path []string) (any, bool) {
	if dict == nil {
		return nil, false
	}

	var node any = dict
	for _, key := range path {
		current, ok := asDictionary(node)
		if !ok {
			return nil, false
		}

		node, ok = current[key]
		if !ok {
			return nil, false
		}
	}

	return node, true
}

func asDictionary(node any) (Dictionary, bool) {
	switch d := node.(type) {
	case Dictionary:
		return d, true
	case map[string]any:
		return d, true
	default:
		return nil, false
	}
}

var pluralCategories = []string{"zero", "one", "two", "few", "many", "other"}

func nodeToMessage(id string, node any) (*i18n.Message, bool) {
	switch v := node.(type) {
	case string:
		return &i18n.Message{ID: id, Other: v}, true
	default:
		d, ok := asDictionary(node)
		if !ok {
			return nil, false
		}

		return dictionaryToPluralMessage(id, d)
	}
}

func dictionaryToPluralMessage(id string, d Dictionary) (*i18n.Message, bool) {
	forms := make(map[string]string, len(d))
	for _, category := range pluralCategories {
		if raw, ok := d[category]; ok {
			form, ok := raw.(string)
			if !ok {
				return nil, false
			}
			forms[category] = form
		}
	}

	// A namespace is only a plural message if every key is a plural
	// category and an "other" form exists.
	if len(forms) != len(d) {
		return nil, false
	}
	if _, ok := forms["other"]; !ok {
		return nil, false
	}

	return &i18n.Message{
		ID:    id,
		Zero:  forms["zero"],
		One:   forms["one"],
		Two:   forms["two"],
		Few:   forms["few"],
		Many:  forms["many"],
		Other: forms["other"],
	}, true
}
