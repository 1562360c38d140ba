// Package i18n holds the two static locales of the client (English and
// Greek) and the persisted language preference.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// Lang is a supported interface language.
type Lang string

const (
	EN Lang = "en"
	EL Lang = "el"
)

// Tag returns the x/text tag of the language.
func (l Lang) Tag() language.Tag {
	if l == EL {
		return language.Greek
	}
	return language.English
}

// Other returns the language a toggle switches to.
func (l Lang) Other() Lang {
	if l == EN {
		return EL
	}
	return EN
}

// ParseLang accepts "en", "el" and regional forms such as "el-GR".
func ParseLang(s string) (Lang, bool) {
	tag, err := language.Parse(strings.TrimSpace(s))
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	switch Lang(base.String()) {
	case EN:
		return EN, true
	case EL:
		return EL, true
	}
	return "", false
}

//go:embed locales/*/*.yaml
var embedded embed.FS

type catalogFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// Bundle is the set of messages per language.
type Bundle struct {
	messages map[Lang]map[string]string
	builder  *catalog.Builder
}

// LoadEmbedded loads the catalogs compiled into the binary.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embedded)
}

// LoadFromFS reads locales/<lang>/<namespace>.yaml files. Both languages must
// be present; keys missing from Greek fall back to English.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob catalogs: %w", err)
	}
	sort.Strings(paths)

	b := &Bundle{messages: map[Lang]map[string]string{}}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		if err := b.add(p, file); err != nil {
			return nil, err
		}
	}

	for _, l := range []Lang{EN, EL} {
		if len(b.messages[l]) == 0 {
			return nil, fmt.Errorf("locale %q has no messages", l)
		}
	}

	if err := b.build(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Bundle) add(p string, file catalogFile) error {
	dirLocale := path.Base(path.Dir(p))
	namespace := strings.TrimSuffix(path.Base(p), path.Ext(p))

	lang, ok := ParseLang(file.Locale)
	if !ok || string(lang) != dirLocale {
		return fmt.Errorf("catalog %s: locale %q must match directory %q", p, file.Locale, dirLocale)
	}
	if file.Namespace != namespace {
		return fmt.Errorf("catalog %s: namespace %q must match file name %q", p, file.Namespace, namespace)
	}

	msgs := b.messages[lang]
	if msgs == nil {
		msgs = map[string]string{}
		b.messages[lang] = msgs
	}
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("catalog %s: blank message key", p)
		}
		if _, dup := msgs[key]; dup {
			return fmt.Errorf("catalog %s: duplicate key %q", p, key)
		}
		msgs[key] = value
	}
	return nil
}

func (b *Bundle) build() error {
	b.builder = catalog.NewBuilder(catalog.Fallback(language.English))
	for _, l := range []Lang{EN, EL} {
		for _, key := range b.Keys() {
			msg, _ := b.Message(l, key)
			if err := b.builder.SetString(l.Tag(), key, msg); err != nil {
				return fmt.Errorf("register %s/%s: %w", l, key, err)
			}
		}
	}
	return nil
}

// Message looks key up in lang, then in English.
func (b *Bundle) Message(lang Lang, key string) (string, bool) {
	if msg, ok := b.messages[lang][key]; ok {
		return msg, true
	}
	msg, ok := b.messages[EN][key]
	return msg, ok
}

// Keys returns the sorted English keys.
func (b *Bundle) Keys() []string {
	keys := make([]string, 0, len(b.messages[EN]))
	for k := range b.messages[EN] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Catalog exposes the registered messages for message.NewPrinter.
func (b *Bundle) Catalog() catalog.Catalog {
	return b.builder
}
