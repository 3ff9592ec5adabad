package interp

import (
	"strconv"
	"syscall"
)

// diagnostic is an error rendered by fatal.
type diagnostic interface {
	// Diagnostic returns the parts of the diagnostic line.
	// The item=value suffix is omitted if item is empty.
	Diagnostic() (message, filename, item string, value int)

	error
}

// diagnosticString formats d the way fatal does, without prefix or newline.
func diagnosticString(d diagnostic) string {
	message, filename, item, value := d.Diagnostic()
	s := message + filename
	if item != "" {
		s += ": " + item + "=" + strconv.Itoa(value)
	}
	return s
}

// PolicyError is returned when the kernel reports secure execution mode,
// or did not report it at all.
type PolicyError struct {
	// Resolved name of the executable.
	Filename string
}

func (e *PolicyError) Diagnostic() (string, string, string, int) {
	return "refusing secure exec of ", e.Filename, "", 0
}
func (e *PolicyError) Error() string { return diagnosticString(e) }

// ConfigError is returned when the variable naming the loader is not set.
type ConfigError struct {
	// Name of the environment variable.
	Name string
}

func (e *ConfigError) Diagnostic() (string, string, string, int) {
	return "environment variable " + e.Name + " must be set to run a NaCl binary directly", "", "", 0
}
func (e *ConfigError) Error() string { return diagnosticString(e) }

// ExecError is returned when execve of the loader returns.
type ExecError struct {
	// Pathname of the loader.
	Path string
	syscall.Errno
}

func (e *ExecError) Unwrap() error {
	if e.Errno == 0 {
		return nil
	}
	return e.Errno
}

func (e *ExecError) Diagnostic() (string, string, string, int) {
	return "failed to execute ", e.Path, "errno", int(e.Errno)
}
func (e *ExecError) Error() string { return diagnosticString(e) }
