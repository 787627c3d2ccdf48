// Package web carries the server-rendered page templates, embedded so the
// binary and the tests render identically regardless of working directory.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS
