// Package interp implements a stand-in for the program interpreter of NaCl executables.
//
// The kernel runs the interpreter named by PT_INTERP in place of the executable itself.
// Instead of loading anything, this re-executes the loader named by [EnvLoader]:
//
//	exec ${NACL_INTERP_LOADER} PLATFORM EXECFN ARGS[1:]...
//
// where PLATFORM is AT_PLATFORM or [Platform], EXECFN is the name of the
// executable, and ARGS are its arguments. Every failure is terminal: a single line is
// written to standard error and the process exits with status 2.
package interp

import "git.gensokyo.uk/security/nacl-interp/internal/stack"

// Main runs the interpreter against the initial stack block b. Main never returns.
func Main(b *stack.Block) {
	run(direct{}, b)
	panic("unreachable")
}

// run resolves the execution context, then replaces the process image with the loader.
// Any error on the way is fatal.
func run(k syscallDispatcher, b *stack.Block) {
	k.lockOSThread()

	ctx, err := resolve(k, b)
	if err == nil {
		err = dispatch(k, ctx, b)
	}
	fatal(k, err)
}
