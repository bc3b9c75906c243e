//go:build !linux

package isr

// setAffinity has no portable equivalent off Linux; Pin still locks the
// goroutine to its OS thread.
func setAffinity(int) (func(), error) {
	return func() {}, nil
}
