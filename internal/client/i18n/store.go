package i18n

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/text/message"

	"github.com/thronos/careerforge/internal/client/repositories/metadata"
	"github.com/thronos/careerforge/internal/common"
)

// Store is the active language plus its persisted preference. It is created
// once by the application and passed to whatever renders text.
type Store struct {
	repo   metadata.Repository
	bundle *Bundle

	mu   sync.RWMutex
	lang Lang
}

func NewStore(repo metadata.Repository, bundle *Bundle) *Store {
	return &Store{repo: repo, bundle: bundle, lang: EN}
}

// Init reads the persisted preference. Absent or unknown values select English.
func (s *Store) Init(ctx context.Context) error {
	v, err := s.repo.Get(ctx, common.LanguageKey)
	if err != nil {
		return fmt.Errorf("read language: %w", err)
	}

	lang := EN
	if l, ok := ParseLang(string(v)); ok && len(v) > 0 {
		lang = l
	}

	s.mu.Lock()
	s.lang = lang
	s.mu.Unlock()
	return nil
}

func (s *Store) Lang() Lang {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lang
}

// Set switches to lang and persists it.
func (s *Store) Set(ctx context.Context, lang Lang) error {
	if err := s.repo.Set(ctx, common.LanguageKey, []byte(lang)); err != nil {
		return fmt.Errorf("persist language: %w", err)
	}
	s.mu.Lock()
	s.lang = lang
	s.mu.Unlock()
	return nil
}

// Toggle flips between English and Greek and persists the result.
func (s *Store) Toggle(ctx context.Context) (Lang, error) {
	next := s.Lang().Other()
	if err := s.Set(ctx, next); err != nil {
		return s.Lang(), err
	}
	return next, nil
}

// T returns the message for key in the active language, the English message
// when the key is not translated, or the key itself.
func (s *Store) T(key string) string {
	if msg, ok := s.bundle.Message(s.Lang(), key); ok {
		return msg
	}
	return key
}

// Sprintf formats the message for key with locale-aware number rendering.
func (s *Store) Sprintf(key string, args ...any) string {
	if _, ok := s.bundle.Message(s.Lang(), key); !ok {
		return key
	}
	p := message.NewPrinter(s.Lang().Tag(), message.Catalog(s.bundle.Catalog()))
	return p.Sprintf(key, args...)
}
