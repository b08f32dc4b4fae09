package browser

import (
	"io"

	pkgbrowser "github.com/pkg/browser"
)

// Opener opens url in a browser.
type Opener func(url string) error

// Default opens url with the system's default browser opener.
func Default(url string) error {
	return pkgbrowser.OpenURL(url)
}

// Discard silences the output of the browser opener subprocess.
func Discard() {
	pkgbrowser.Stdout = io.Discard
	pkgbrowser.Stderr = io.Discard
}
