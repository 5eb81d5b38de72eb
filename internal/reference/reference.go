// Package reference parses target references given on the command line and
// resolves them into the attribute paths the nix CLI expects.
//
// Three forms are accepted, tried in this order:
//
//	.#name          local attribute of the current flake
//	proto:path      remote flake reference, e.g. nixpkgs:hello
//	name            partial name, expanded with a category and platform
package reference

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnableToParse is returned when the input matches none of the reference forms.
var ErrUnableToParse = errors.New("unable to parse reference")

// localSigil prefixes references to the current flake.
const localSigil = ".#"

// Reference is one of Local, Remote or Partial.
type Reference interface {
	fmt.Stringer
	reference()
}

// Local is an attribute of the current flake, written ".#path".
type Local struct {
	Path string
}

// Remote is a fully qualified reference, written "protocol:path".
type Remote struct {
	Protocol string
	Path     string
}

// Partial is a bare name that still needs a category and platform.
type Partial struct {
	Name string
}

func (Local) reference()   {}
func (Remote) reference()  {}
func (Partial) reference() {}

func (l Local) String() string   { return localSigil + l.Path }
func (r Remote) String() string  { return r.Protocol + ":" + r.Path }
func (p Partial) String() string { return p.Name }

// Parse parses the whole of s as a reference. Alternatives are tried in the
// order local, remote, partial and the first one that consumes all of s wins.
func Parse(s string) (Reference, error) {
	for _, alt := range []func(string) (Reference, bool){parseLocal, parseRemote, parsePartial} {
		if ref, ok := alt(s); ok {
			return ref, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnableToParse, s)
}

func parseLocal(s string) (Reference, bool) {
	rest, ok := strings.CutPrefix(s, localSigil)
	if !ok {
		return nil, false
	}
	path, rest, ok := word(rest)
	if !ok || rest != "" {
		return nil, false
	}
	return Local{Path: path}, true
}

func parseRemote(s string) (Reference, bool) {
	protocol, rest, ok := word(s)
	if !ok {
		return nil, false
	}
	rest, ok = strings.CutPrefix(rest, ":")
	if !ok {
		return nil, false
	}
	path, rest, ok := word(rest)
	if !ok || rest != "" {
		return nil, false
	}
	return Remote{Protocol: protocol, Path: path}, true
}

func parsePartial(s string) (Reference, bool) {
	name, rest, ok := word(s)
	if !ok || rest != "" {
		return nil, false
	}
	return Partial{Name: name}, true
}

// word consumes the longest non-empty run of word characters at the start of s.
func word(s string) (w, rest string, ok bool) {
	i := 0
	for i < len(s) && isWordByte(s[i]) {
		i++
	}
	if i == 0 {
		return "", s, false
	}
	return s[:i], s[i:], true
}

func isWordByte(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '_' || c == '-':
		return true
	}
	return false
}
