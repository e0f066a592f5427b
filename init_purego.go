//go:build purego

package boxblur

import (
	_ "github.com/cwbudde/algo-boxblur/internal/arch/generic"  // register generic kernel
	_ "github.com/cwbudde/algo-boxblur/internal/arch/registry" // initialize kernel registry
)
