//go:build js

package navigate

import "syscall/js"

// New returns a Navigator that replaces the current page, the way a link
// in the hosting page would.
func New() Navigator {
	return Func(func(url string) error {
		js.Global().Get("location").Set("href", url)
		return nil
	})
}
