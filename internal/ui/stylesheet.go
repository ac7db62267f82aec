package ui

import (
	"crypto/sha256"
	"encoding/hex"
	"io/fs"
	"sync"

	"titanic-dash/internal/ui/assets"
)

const defaultStylesheetPath = "/ui/static/css/app.css"

var (
	stylesheetPathOnce sync.Once
	stylesheetPath     = defaultStylesheetPath
)

// uiStylesheetHref returns the stylesheet URL with a content hash so browsers
// refetch it after a rebuild.
func uiStylesheetHref() string {
	stylesheetPathOnce.Do(func() {
		css, err := fs.ReadFile(assets.StaticFS(), "static/css/app.css")
		if err != nil {
			return
		}
		sum := sha256.Sum256(css)
		stylesheetPath = defaultStylesheetPath + "?v=" + hex.EncodeToString(sum[:4])
	})

	return stylesheetPath
}
