// The nacl_interp command stands in for the program interpreter of NaCl executables.
//
// The kernel neither relocates an interpreter nor runs a dynamic linker for it, so this
// must be a static executable that is not position independent:
//
//	CGO_ENABLED=0 go build ./cmd/nacl_interp
//
// Do not build with -buildmode=pie. The result is installed, or symlinked,
// at the path appearing in PT_INTERP of a nexe for the platform in question:
//
//	/lib/ld-nacl-x86-32.so.1
//	/lib64/ld-nacl-x86-64.so.1
//	/lib/ld-nacl-arm.so.1
//
// Running a nexe then runs this program, which does
//
//	exec ${NACL_INTERP_LOADER} PLATFORM NEXE ARGS...
//
// NACL_INTERP_LOADER should name a wrapper that runs the appropriate sel_ldr.
package main

// minimise imports: this runs before anything the executable would have initialised

import (
	"os"

	"git.gensokyo.uk/security/nacl-interp/internal/interp"
	"git.gensokyo.uk/security/nacl-interp/internal/stack"
)

func main() {
	b, err := stack.Self()
	if err != nil {
		if b, err = stack.Runtime(); err != nil {
			// without an auxiliary vector secure mode cannot be ruled out,
			// so this always ends in a refusal
			b = stack.FromRuntime(os.Args, os.Environ(), nil)
		}
	}
	interp.Main(b)
}
