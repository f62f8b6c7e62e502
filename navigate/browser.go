//go:build !js

package navigate

import (
	"fmt"

	"github.com/pkg/browser"
)

// New returns a Navigator that opens the system browser.
func New() Navigator {
	return Func(func(url string) error {
		if err := browser.OpenURL(url); err != nil {
			return fmt.Errorf("navigate: open %s: %w", url, err)
		}
		return nil
	})
}
