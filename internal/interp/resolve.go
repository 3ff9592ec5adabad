package interp

import (
	"git.gensokyo.uk/security/nacl-interp/internal/stack"
	"golang.org/x/sys/unix"
)

// selfExe is the procfs link to the executable of the calling process.
const selfExe = "/proc/self/exe"

// Context is the execution context resolved from the auxiliary vector.
type Context struct {
	// Name of the executable being run.
	Filename string
	// Platform string passed to the loader.
	Platform string
	// Whether the kernel requested secure execution mode.
	Secure bool
}

// resolve scans the auxiliary vector of b once and fills in missing values.
//
// Secure mode defaults to true: a kernel that does not say otherwise is assumed
// to be running a privileged executable. The filename is resolved before secure mode
// is checked so it can appear in the diagnostic.
func resolve(k syscallDispatcher, b *stack.Block) (*Context, error) {
	ctx := Context{Secure: true}

	var execfn, platform uintptr
	for _, e := range b.Auxv {
		switch e.Tag {
		case stack.AT_EXECFN:
			execfn = e.Val
		case stack.AT_PLATFORM:
			platform = e.Val
		case stack.AT_SECURE:
			ctx.Secure = e.Val != 0
		}
	}

	if execfn != 0 {
		ctx.Filename = b.CString(execfn)
	} else {
		var argv0 string
		if b.Argc > 0 {
			argv0 = b.Argv[0]
		}
		ctx.Filename = executable(k, argv0)
	}

	if ctx.Secure {
		return &ctx, &PolicyError{ctx.Filename}
	}

	if platform != 0 {
		ctx.Platform = b.CString(platform)
	} else {
		ctx.Platform = Platform
	}
	return &ctx, nil
}

// executable returns the target of [selfExe], or argv0 if it cannot be read.
// A target longer than [unix.PathMax] is silently truncated.
func executable(k syscallDispatcher, argv0 string) string {
	var buf [unix.PathMax]byte
	if n, err := k.readlink(selfExe, buf[:]); err == nil {
		return string(buf[:n])
	}
	return argv0
}
