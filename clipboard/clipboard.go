// Package clipboard is a thin seam over the system clipboard so callers and
// tests do not import the driver directly.
package clipboard

import cb "github.com/atotto/clipboard"

func Read() (string, error) {
	return cb.ReadAll()
}

func Copy(text string) error {
	return cb.WriteAll(text)
}
