package i18n

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/text/language"
)

// TranslatableError is an error value that renders its message lazily from
// a translation key and optional formatting arguments. Parse failures are
// passed around as values of this kind and only turned into text when they
// are finally reported.
type TranslatableError interface {
	error
	Key() string
	Args() []interface{}
	Unwrap() error
	WithArgs(args ...interface{}) TranslatableError
	Wrap(err error) TranslatableError
	SetProvider(provider MessageProvider)
}

// MessageProvider resolves a translation key to a message template.
type MessageProvider interface {
	GetMessage(key string) string
}

// BundleMessageProvider resolves keys against a Bundle's default language.
type BundleMessageProvider struct {
	bundle *Bundle
}

// NewBundleMessageProvider creates a provider backed by the given bundle.
func NewBundleMessageProvider(bundle *Bundle) *BundleMessageProvider {
	return &BundleMessageProvider{bundle: bundle}
}

// GetMessage returns the message template for key, falling back to the key
// itself when no translation exists.
func (p *BundleMessageProvider) GetMessage(key string) string {
	if p.bundle == nil {
		return key
	}

	p.bundle.mu.RLock()
	defer p.bundle.mu.RUnlock()
	if msg, ok := p.bundle.translations[p.bundle.defaultLang][key]; ok {
		return msg
	}
	if msg, ok := p.bundle.translations[language.English][key]; ok {
		return msg
	}
	return key
}

// TrError is the TranslatableError implementation used by the errs package.
// The zero-argument form created by NewError acts as a sentinel: derived
// errors built with WithArgs or Wrap still compare equal to it under
// errors.Is.
type TrError struct {
	sentinel error
	key      string
	args     []interface{}
	wrapped  error
	provider MessageProvider
}

// NewError creates a translatable error for the given key.
func NewError(key string) *TrError {
	provider := getDefaultProvider()
	return &TrError{
		sentinel: errors.New(provider.GetMessage(key)),
		key:      key,
		provider: provider,
	}
}

// Error renders the message with the current provider and arguments.
func (e *TrError) Error() string {
	msg := e.provider.GetMessage(e.key)
	if len(e.args) > 0 {
		msg = fmt.Sprintf(msg, e.args...)
	}

	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", msg, e.wrapped)
	}
	return msg
}

// WithArgs returns a copy of the error carrying format arguments.
func (e *TrError) WithArgs(args ...interface{}) TranslatableError {
	clone := *e
	clone.args = args
	return &clone
}

// Wrap returns a copy of the error wrapping another error.
func (e *TrError) Wrap(err error) TranslatableError {
	clone := *e
	clone.wrapped = err
	return &clone
}

// Is reports whether target shares this error's sentinel.
func (e *TrError) Is(target error) bool {
	if t, ok := target.(*TrError); ok {
		return e.sentinel == t.sentinel
	}
	return target == e.sentinel || target == e
}

// Key returns the translation key.
func (e *TrError) Key() string {
	return e.key
}

// Args returns the format arguments.
func (e *TrError) Args() []interface{} {
	return e.args
}

// Unwrap returns the wrapped error, if any.
func (e *TrError) Unwrap() error {
	return e.wrapped
}

// SetProvider replaces the provider used to resolve this error's template.
func (e *TrError) SetProvider(provider MessageProvider) {
	e.provider = provider
}

var (
	defaultProvider    MessageProvider
	defaultProviderMux sync.RWMutex
)

// SetDefaultMessageProvider replaces the provider used by errors created
// after the call.
func SetDefaultMessageProvider(p MessageProvider) {
	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()
	defaultProvider = p
}

func getDefaultProvider() MessageProvider {
	defaultProviderMux.RLock()
	if defaultProvider != nil {
		defer defaultProviderMux.RUnlock()
		return defaultProvider
	}
	defaultProviderMux.RUnlock()

	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()

	if defaultProvider == nil {
		defaultProvider = NewBundleMessageProvider(Default())
	}
	return defaultProvider
}
