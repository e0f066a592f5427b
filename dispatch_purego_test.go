//go:build purego

package boxblur

import (
	"testing"

	archregistry "github.com/cwbudde/algo-boxblur/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func TestBox1DDispatch_PuregoUsesGeneric(t *testing.T) {
	entry := archregistry.Global.Lookup(cpu.Features{
		Architecture: "amd64",
		ForceGeneric: true,
	})
	if entry == nil {
		t.Fatal("Lookup returned nil")
	}
	if entry.Name != "generic" {
		t.Fatalf("expected generic implementation in purego, got %q", entry.Name)
	}
}
