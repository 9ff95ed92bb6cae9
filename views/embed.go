// Package views holds the embedded HTML templates rendered by the
// Fiber html engine.
package views

import (
	"embed"
)

//go:embed *.html gallery/*.html notes/*.html watchlist/*.html
var FS embed.FS
