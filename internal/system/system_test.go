package system

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTriple(t *testing.T) {
	tests := []struct {
		arch, os string
		want     string
	}{
		{"amd64", "linux", "x86_64-linux"},
		{"arm64", "linux", "aarch64-linux"},
		{"amd64", "darwin", "x86_64-darwin"},
		{"arm64", "darwin", "aarch64-darwin"},
		{"386", "windows", "i686-windows"},
		{"amd64", "windows", "x86_64-windows"},
		{"arm64", "windows", "aarch64-windows"},
		{"mips", "linux", Unknown},
		{"amd64", "plan9", Unknown},
		{"", "", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.arch+"/"+tt.os, func(t *testing.T) {
			assert.Equal(t, tt.want, Triple(tt.arch, tt.os))
		})
	}
}

func TestCurrentMatchesRuntime(t *testing.T) {
	assert.Equal(t, Triple(runtime.GOARCH, runtime.GOOS), Current())
}
