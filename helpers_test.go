// SPDX-License-Identifier: GPL-3.0-or-later

package procedure

// counter is a callable object with a few methods of the same signature.
type counter struct {
	total int
}

func (c *counter) Call(n int) int {
	c.total += n
	return c.total
}

func (c *counter) Add(n int) int {
	c.total += n
	return c.total
}

func (c *counter) Sub(n int) int {
	c.total -= n
	return c.total
}

// Peek has a value receiver, so (*counter).Peek is a compiler wrapper.
func (c counter) Peek(n int) int {
	return c.total + n
}

// box is a generic receiver type.
type box[T any] struct {
	value T
}

func (b *box[T]) Get(Unit) T {
	return b.value
}

func double(n int) int {
	return 2 * n
}

func triple(n int) int {
	return 3 * n
}

// makeAdder returns a closure capturing offset.
func makeAdder(offset int) func(int) int {
	return func(n int) int {
		return n + offset
	}
}

// addTo has a method-like shape but is a free function.
func addTo(c *counter, n int) int {
	c.total += n
	return c.total
}

// newConfigWith returns a default [*Config] modified by fn.
func newConfigWith(fn func(cfg *Config)) *Config {
	cfg := NewConfig()
	fn(cfg)
	return cfg
}
