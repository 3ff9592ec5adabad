package interp

import (
	"errors"
	"os"
	"syscall"

	"git.gensokyo.uk/security/nacl-interp/internal/stack"
)

// EnvLoader names the environment variable holding the pathname of the loader.
const EnvLoader = "NACL_INTERP_LOADER"

// LookupEnv returns the value of the first entry of envp of the form name=value.
// An entry consisting of name alone does not match.
func LookupEnv(envp []string, name string) (string, bool) {
	for _, s := range envp {
		if len(s) > len(name) && s[len(name)] == '=' && s[:len(name)] == name {
			return s[len(name)+1:], true
		}
	}
	return "", false
}

// NewArgv returns the argument vector of the loader.
// argv[0] of the executable is replaced by filename.
func NewArgv(loader, platform, filename string, argv []string) []string {
	v := make([]string, 3, 3+max(len(argv)-1, 0))
	v[0], v[1], v[2] = loader, platform, filename
	if len(argv) > 1 {
		v = append(v, argv[1:]...)
	}
	return v
}

// dispatch replaces the process image with the loader.
// The environment is passed through as decoded. dispatch only returns on failure.
func dispatch(k syscallDispatcher, ctx *Context, b *stack.Block) error {
	loader, ok := LookupEnv(b.Envp, EnvLoader)
	if !ok {
		return &ConfigError{EnvLoader}
	}

	err := k.execve(loader, NewArgv(loader, ctx.Platform, ctx.Filename, b.Argv), b.Envp)
	if err == nil {
		// execve does not return on success
		return &ExecError{Path: loader}
	}

	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return &os.PathError{Op: "execve", Path: loader, Err: err}
	}
	return &ExecError{loader, errno}
}
