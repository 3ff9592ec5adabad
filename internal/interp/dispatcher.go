package interp

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// syscallDispatcher provides the system calls the interpreter makes.
type syscallDispatcher interface {
	// lockOSThread provides [runtime.LockOSThread].
	lockOSThread()

	// readlink provides [unix.Readlink].
	readlink(name string, buf []byte) (n int, err error)
	// writev provides [unix.Writev].
	writev(fd int, iovs [][]byte) (n int, err error)
	// execve provides [unix.Exec].
	execve(argv0 string, argv, envv []string) error
	// exit provides [unix.Exit].
	exit(code int)
}

// direct implements syscallDispatcher on the current kernel.
type direct struct{}

func (direct) lockOSThread() { runtime.LockOSThread() }

func (direct) readlink(name string, buf []byte) (int, error) { return unix.Readlink(name, buf) }
func (direct) writev(fd int, iovs [][]byte) (int, error)     { return unix.Writev(fd, iovs) }
func (direct) execve(argv0 string, argv, envv []string) error {
	return unix.Exec(argv0, argv, envv)
}
func (direct) exit(code int) { unix.Exit(code) }
