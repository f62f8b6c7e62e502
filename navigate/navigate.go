// Package navigate sends the player to an external page.
package navigate

import "errors"

var ErrEmptyURL = errors.New("navigate: empty url")

// Navigator opens a URL outside the game.
type Navigator interface {
	Open(url string) error
}

// Func adapts a function to Navigator.
type Func func(url string) error

func (f Func) Open(url string) error {
	if url == "" {
		return ErrEmptyURL
	}
	return f(url)
}
