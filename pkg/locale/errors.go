package locale

import "errors"

var (
	ErrEmptyDefault  = errors.New("locale: default locale cannot be empty")
	ErrNoLocales     = errors.New("locale: at least one supported locale is required")
	ErrInvalidLocale = errors.New("locale: invalid locale identifier")
)
