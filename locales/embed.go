// Package locales embeds the message catalogs shipped with the client.
package locales

import "embed"

// FS holds ar.yaml and en.yaml at its root.
//
//go:embed *.yaml
var FS embed.FS
