package cli

import (
	"testing"

	"github.com/luban-cli/luban/internal/config"
	"github.com/luban-cli/luban/internal/creator"
)

func TestLookupRegistry(t *testing.T) {
	if got := lookupRegistry(creator.Options{Registry: "https://registry.npmmirror.com"}); got != "https://registry.npmmirror.com" {
		t.Errorf("lookupRegistry() = %q, want the install registry", got)
	}
	if got, want := lookupRegistry(creator.Options{}), config.Registry(); got != want {
		t.Errorf("lookupRegistry() = %q, want configured %q", got, want)
	}
}
