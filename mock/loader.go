// Package mock provides test doubles for kabigen interfaces.
package mock

import "github.com/mstanek/kabigen"

// Compile-time interface verification.
var _ kabigen.Loader = (*Loader)(nil)

// Loader is a mock implementation of kabigen.Loader.
type Loader struct {
	LoadFn func(dir string) ([]*kabigen.Difference, error)
}

func (l *Loader) Load(dir string) ([]*kabigen.Difference, error) {
	return l.LoadFn(dir)
}
