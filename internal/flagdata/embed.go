// Package flagdata provides the embedded country flag set and label lookup.
package flagdata

import "embed"

// dataFS embeds the flag definitions at build time.
//
//go:embed *.json
var dataFS embed.FS
