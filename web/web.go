// Package web holds the embedded server-rendered templates. The core hands
// it plain data (courses, current user, notice) and it produces markup.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS
