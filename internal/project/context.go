// Package project finds the flake a command operates on and carries the
// per-invocation execution context.
package project

// Context is the immutable execution context built once per invocation.
type Context struct {
	system string
	root   string
}

// NewContext builds a Context for the given platform id and project root.
func NewContext(system, root string) Context {
	return Context{system: system, root: root}
}

// System returns the platform id used to expand partial references.
func (c Context) System() string { return c.system }

// Root returns the directory containing the flake manifest.
func (c Context) Root() string { return c.root }
