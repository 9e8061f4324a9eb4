package i18n

import (
	"errors"
	"fmt"
)

var (
	ErrNilAdapter              = errors.New("translation adapter is nil")
	ErrInvalidTranslations     = errors.New("invalid translations")
	ErrYAMLParsingCancelled    = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML       = errors.New("failed to parse YAML content")
	ErrLoadingCancelled        = errors.New("loading translations cancelled")
	ErrFailedToReadDirectory   = errors.New("failed to read translations directory")
	ErrFailedToReadFile        = errors.New("failed to read translation file")
	ErrNoTranslationFilesFound = errors.New("no translation files found")
)

// LanguageNotSupportedError indicates that the requested language is not available.
type LanguageNotSupportedError struct {
	Lang string
}

func (e *LanguageNotSupportedError) Error() string {
	return fmt.Sprintf("language not supported: %s", e.Lang)
}
