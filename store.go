package localize

import "sync"

// Store is a read-sharable handle around a single Localization for
// applications that want one process-wide instance. It serializes
// SetLanguage against concurrent lookups, which a bare Localization
// deliberately does not do.
type Store struct {
	mu     sync.RWMutex
	loc    *Localization
	onMiss func(lang, key string)
}

// StoreOption configures a Store during construction.
type StoreOption func(*Store)

// WithMissHandler sets a callback invoked whenever Text falls back to the
// key because no translation exists. Useful for surfacing translation gaps,
// e.g. through a slog handler. The callback runs under the store's read
// lock and must not call back into the store.
func WithMissHandler(fn func(lang, key string)) StoreOption {
	return func(s *Store) {
		s.onMiss = fn
	}
}

// NewStore wraps loc in a concurrency-safe handle.
func NewStore(loc *Localization, opts ...StoreOption) *Store {
	s := &Store{loc: loc}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Text resolves key in the active language, falling back to the key itself
// exactly like Localization.Text.
func (s *Store) Text(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	word, found := s.loc.lookup(key)
	if !found && s.onMiss != nil {
		s.onMiss(s.loc.language, key)
	}
	return word
}

// Language returns the current active language key.
func (s *Store) Language() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loc.Language()
}

// SetLanguage switches the active language for all subsequent lookups.
func (s *Store) SetLanguage(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loc.SetLanguage(key)
}

// Languages returns the language keys with a registered dictionary.
func (s *Store) Languages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loc.Languages()
}

// Swap replaces the held Localization and returns the previous one. It is
// the way to roll out a new dictionary set at runtime, since Localization
// values are immutable after Build.
func (s *Store) Swap(loc *Localization) *Localization {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.loc
	s.loc = loc
	return prev
}
