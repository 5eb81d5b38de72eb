// Package system maps the Go runtime's architecture and OS identifiers to the
// platform ids ("system doubles") used as attribute path segments in flakes.
package system

import "runtime"

// Unknown is returned for any architecture/OS pair without a known platform id.
const Unknown = "unknown"

type platform struct {
	arch string
	os   string
}

// triples maps GOARCH/GOOS pairs to platform ids.
var triples = map[platform]string{
	{"amd64", "linux"}:   "x86_64-linux",
	{"arm64", "linux"}:   "aarch64-linux",
	{"386", "linux"}:     "i686-linux",
	{"riscv64", "linux"}: "riscv64-linux",
	{"amd64", "darwin"}:  "x86_64-darwin",
	{"arm64", "darwin"}:  "aarch64-darwin",
	{"386", "windows"}:   "i686-windows",
	{"amd64", "windows"}: "x86_64-windows",
	{"arm64", "windows"}: "aarch64-windows",
}

// Triple returns the platform id for the given GOARCH and GOOS values,
// or Unknown when the pair is not in the table.
func Triple(goarch, goos string) string {
	if id, ok := triples[platform{goarch, goos}]; ok {
		return id
	}
	return Unknown
}

// Current returns the platform id of the running binary.
func Current() string {
	return Triple(runtime.GOARCH, runtime.GOOS)
}
