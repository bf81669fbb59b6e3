// Package web embeds the HTML templates so the server binary is self
// contained.
package web

import "embed"

// Templates holds every page and partial under template/.
//
//go:embed template/*.html
var Templates embed.FS
