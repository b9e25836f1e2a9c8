// Package views sunucu tarafında render edilen HTML şablonlarını binary içine gömer.
package views

import "embed"

//go:embed layouts/*.html public/*.html errors/*.html
var FS embed.FS
