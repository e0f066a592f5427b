//go:build amd64 && !purego

package boxblur

import (
	_ "github.com/cwbudde/algo-boxblur/internal/arch/amd64/avx2" // register AVX2 kernel
	_ "github.com/cwbudde/algo-boxblur/internal/arch/generic"    // register generic kernel
	_ "github.com/cwbudde/algo-boxblur/internal/arch/registry"   // initialize kernel registry
)
