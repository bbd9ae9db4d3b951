// Package assets embeds the email templates and the static landing page.
package assets

import "embed"

//go:embed all:templates static
var FS embed.FS
