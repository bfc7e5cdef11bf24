package preference

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strings"
	"time"
)

// DefaultCookieName is the cookie used to persist the resolved locale.
const DefaultCookieName = "locale"

// DefaultTTL is the preference lifetime. Multi-day, so returning visitors
// land on their language without re-resolution from headers.
const DefaultTTL = 30 * 24 * time.Hour

// Store reads and writes the client-side locale preference.
type Store struct {
	name     string
	domain   string
	path     string
	secret   []byte // nil = plain value
	ttl      time.Duration
	secure   bool
	httpOnly bool
	sameSite http.SameSite
}

// Option configures the Store.
type Option func(*Store)

// New creates a preference Store with the given options.
func New(opts ...Option) *Store {
	s := &Store{
		name:     DefaultCookieName,
		path:     "/",
		ttl:      DefaultTTL,
		httpOnly: true,
		sameSite: http.SameSiteLaxMode,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithName sets the cookie name.
func WithName(name string) Option {
	return func(s *Store) {
		if name != "" {
			s.name = name
		}
	}
}

// WithTTL sets the preference lifetime.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithSecret enables HMAC signing of the stored value.
// Must be at least 32 bytes; shorter secrets are ignored.
func WithSecret(secret string) Option {
	return func(s *Store) {
		if len(secret) >= 32 {
			s.secret = []byte(secret)
		}
	}
}

// WithDomain sets the cookie domain.
func WithDomain(domain string) Option {
	return func(s *Store) {
		s.domain = domain
	}
}

// WithPath sets the cookie path.
func WithPath(path string) Option {
	return func(s *Store) {
		if path != "" {
			s.path = path
		}
	}
}

// WithSecure sets the Secure flag.
func WithSecure(secure bool) Option {
	return func(s *Store) {
		s.secure = secure
	}
}

// WithSameSite sets the SameSite attribute.
func WithSameSite(ss http.SameSite) Option {
	return func(s *Store) {
		s.sameSite = ss
	}
}

// Get returns the stored preference. A missing cookie, an empty value, or a
// bad signature all read as absent; the caller's resolution chain moves on
// to its next source.
func (s *Store) Get(r *http.Request) (string, bool) {
	c, err := r.Cookie(s.name)
	if err != nil || c.Value == "" {
		return "", false
	}

	if s.secret == nil {
		return c.Value, true
	}

	value, ok := s.verify(c.Value)
	return value, ok
}

// Set persists the locale, refreshing the expiry.
func (s *Store) Set(w http.ResponseWriter, locale string) {
	value := locale
	if s.secret != nil {
		value = s.sign(locale)
	}
	http.SetCookie(w, s.cookie(value, int(s.ttl.Seconds())))
}

// Clear removes the stored preference.
func (s *Store) Clear(w http.ResponseWriter) {
	http.SetCookie(w, s.cookie("", -1))
}

// Name returns the cookie name in use.
func (s *Store) Name() string {
	return s.name
}

// cookie creates a cookie with the store's defaults.
func (s *Store) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     s.name,
		Value:    value,
		Path:     s.path,
		Domain:   s.domain,
		MaxAge:   maxAge,
		Secure:   s.secure,
		HttpOnly: s.httpOnly,
		SameSite: s.sameSite,
	}
}

// sign encodes the value as base64(value).base64(hmac-sha256).
func (s *Store) sign(value string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(value))
	sig := mac.Sum(nil)

	return base64.RawURLEncoding.EncodeToString([]byte(value)) +
		"." + base64.RawURLEncoding.EncodeToString(sig)
}

// verify checks the signature and returns the embedded value.
func (s *Store) verify(raw string) (string, bool) {
	encoded, encodedSig, ok := strings.Cut(raw, ".")
	if !ok {
		return "", false
	}

	value, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", false
	}

	sig, err := base64.RawURLEncoding.DecodeString(encodedSig)
	if err != nil {
		return "", false
	}

	mac := hmac.New(sha256.New, s.secret)
	mac.Write(value)
	if !hmac.Equal(sig, mac.Sum(nil)) {
		return "", false
	}

	return string(value), true
}
