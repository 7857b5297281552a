// Package assets embeds the fixed fallback image served when a product
// has no stored image.
package assets

import _ "embed"

//go:embed placeholder.png
var PlaceholderPNG []byte

const PlaceholderContentType = "image/png"
