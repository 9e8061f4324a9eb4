package i18n_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/i18n"
)

func newTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()
	tr, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{
		Data: map[string]map[string]any{
			"ar": {
				"validation": map[string]any{
					"required":   "هذا الحقل مطلوب",
					"min_length": "يجب ألا يقل عن %{min} أحرف",
				},
				"only_ar": "عربي",
				"volunteers": map[string]any{
					"zero":  "لا متطوعين",
					"one":   "متطوع واحد",
					"two":   "متطوعان",
					"other": "%{count} متطوع",
				},
			},
			"en": {
				"validation": map[string]any{
					"required":   "This field is required",
					"min_length": "Must be at least %{min} characters",
				},
				"volunteers": map[string]any{
					"one":   "%{count} volunteer",
					"other": "%{count} volunteers",
				},
			},
		},
	}, opts...)
	require.NoError(t, err)
	return tr
}

func TestTranslator_T(t *testing.T) {
	t.Parallel()
	tr := newTranslator(t)

	assert.Equal(t, "This field is required", tr.T("en", "validation.required"))
	assert.Equal(t, "هذا الحقل مطلوب", tr.T("ar", "validation.required"))
	assert.Equal(t, "Must be at least 8 characters", tr.T("en", "validation.min_length", "min", "8"))

	t.Run("falls back to default language", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "عربي", tr.T("en", "only_ar"))
		assert.Equal(t, "هذا الحقل مطلوب", tr.T("fr", "validation.required"))
	})

	t.Run("falls back to key", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "missing.key", tr.T("en", "missing.key"))
		assert.Equal(t, "validation", tr.T("en", "validation"))
	})

	t.Run("unknown placeholder kept", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Must be at least %{min} characters", tr.T("en", "validation.min_length", "max", "3"))
	})

	t.Run("no fallback to key", func(t *testing.T) {
		t.Parallel()
		strict := newTranslator(t, i18n.WithFallbackToKey(false))
		assert.Empty(t, strict.T("en", "missing.key"))
		assert.Equal(t, "default", strict.Td("en", "missing.key", "default"))
	})
}

func TestTranslator_N(t *testing.T) {
	t.Parallel()
	tr := newTranslator(t)

	assert.Equal(t, "لا متطوعين", tr.N("ar", "volunteers", 0))
	assert.Equal(t, "متطوع واحد", tr.N("ar", "volunteers", 1))
	assert.Equal(t, "متطوعان", tr.N("ar", "volunteers", 2))
	assert.Equal(t, "11 متطوع", tr.N("ar", "volunteers", 11))
	assert.Equal(t, "1 volunteer", tr.N("en", "volunteers", 1))
	assert.Equal(t, "0 volunteers", tr.N("en", "volunteers", 0))
	assert.Equal(t, "2 volunteers", tr.N("en", "volunteers", 2))
}

func TestTranslator_Context(t *testing.T) {
	t.Parallel()
	tr := newTranslator(t)

	ctx := i18n.SetLocale(context.Background(), "en")
	assert.Equal(t, "This field is required", tr.Tc(ctx, "validation.required"))
	assert.Equal(t, "هذا الحقل مطلوب", tr.Tc(context.Background(), "validation.required"))
}

func TestTranslator_Languages(t *testing.T) {
	t.Parallel()
	tr := newTranslator(t)

	assert.Equal(t, []string{"ar", "en"}, tr.SupportedLanguages())
	assert.True(t, tr.HasTranslation("en", "validation.required"))
	assert.False(t, tr.HasTranslation("en", "only_ar"))
	assert.Equal(t, "en", tr.Match("en-US,en;q=0.9"))
	assert.Equal(t, "ar", tr.Match("ar-SA"))
	assert.Equal(t, "ar", tr.Match("fr"))
	assert.Equal(t, "ar", tr.Match())
}

func TestNewTranslator_Errors(t *testing.T) {
	t.Parallel()

	_, err := i18n.NewTranslator(context.Background(), nil)
	assert.ErrorIs(t, err, i18n.ErrNilAdapter)

	_, err = i18n.NewTranslator(context.Background(), &i18n.MapAdapter{
		Data: map[string]map[string]any{"": {}},
	})
	assert.ErrorIs(t, err, i18n.ErrInvalidTranslations)
}

func TestFSAdapter(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"locales/ar.yaml":   {Data: []byte("ar:\n  greeting: \"أهلا\"\n")},
		"locales/en.yml":    {Data: []byte("en:\n  greeting: \"Hello\"\n")},
		"locales/notes.txt": {Data: []byte("ignored")},
		"broken/x.yaml":     {Data: []byte("en: [1, 2")},
		"empty/readme.md":   {Data: []byte("#")},
	}

	t.Run("loads and merges", func(t *testing.T) {
		t.Parallel()
		tr, err := i18n.NewTranslator(context.Background(), i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "locales"))
		require.NoError(t, err)
		assert.Equal(t, "Hello", tr.T("en", "greeting"))
		assert.Equal(t, "أهلا", tr.T("ar", "greeting"))
	})

	t.Run("parse error", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "broken").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("no catalogs", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "empty").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrNoTranslationFilesFound)
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "nope").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToReadDirectory)
	})

	t.Run("cancelled", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "locales").Load(ctx)
		assert.ErrorIs(t, err, i18n.ErrLoadingCancelled)
	})

	t.Run("nil inputs", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, i18n.NewFSAdapter(nil, fsys, "locales"))
		assert.Nil(t, i18n.NewFSAdapter(i18n.NewYAMLParser(), nil, "locales"))
	})
}

func TestDirectionOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, i18n.RTL, i18n.DirectionOf("ar"))
	assert.Equal(t, i18n.RTL, i18n.DirectionOf("ar-SA"))
	assert.Equal(t, i18n.LTR, i18n.DirectionOf("en"))
	assert.Equal(t, i18n.LTR, i18n.DirectionOf("!!"))
}
