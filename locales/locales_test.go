package locales_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RafeefAlsuhaibani/takaful-sub001/locales"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/i18n"
)

func TestCatalogsHaveSameKeys(t *testing.T) {
	t.Parallel()

	data, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), locales.FS, ".").Load(context.Background())
	require.NoError(t, err)
	require.Contains(t, data, "ar")
	require.Contains(t, data, "en")

	assert.ElementsMatch(t, flatten("", data["en"]), flatten("", data["ar"]))
}

func flatten(prefix string, m map[string]any) []string {
	var keys []string
	for k, v := range m {
		if nested, ok := v.(map[string]any); ok {
			keys = append(keys, flatten(prefix+k+".", nested)...)
			continue
		}
		keys = append(keys, prefix+k)
	}
	return keys
}
