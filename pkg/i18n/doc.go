// Package i18n provides message catalogs for the Arabic-first client.
//
// A Translator is loaded once from a TranslationAdapter: MapAdapter for
// in-memory catalogs and FSAdapter for YAML files in an fs.FS such as the
// embedded locales directory. Keys are dot separated ("validation.required")
// and values may contain %{name} placeholders.
//
// Lookups fall back from the requested language to the default language
// ("ar") and finally to the key itself. MatchLanguage and Translator.Match
// negotiate a language from BCP 47 tags or Accept-Language values using
// golang.org/x/text/language, and DirectionOf tells whether a language is
// written right to left.
package i18n
