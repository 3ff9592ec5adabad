package interp

import (
	"errors"
	"strconv"
)

const (
	// diagPrefix is prepended to every diagnostic line.
	diagPrefix = "nacl_interp: "

	// exitFatal is the exit status of every failure.
	exitFatal = 2
)

// fatal writes the diagnostic line of err to standard error with a single writev,
// then exits with status 2 regardless of the outcome of the write.
func fatal(k syscallDispatcher, err error) {
	var (
		message, filename, item string
		value                   int

		d diagnostic
	)
	if errors.As(err, &d) {
		message, filename, item, value = d.Diagnostic()
	} else if err != nil {
		message = err.Error()
	}

	var valbuf [32]byte
	iov := [...][]byte{
		[]byte(diagPrefix),
		[]byte(message),
		[]byte(filename),
		nil, // ": "
		nil, // item
		nil, // "="
		nil, // value
		{'\n'},
	}
	if item != "" {
		iov[3] = []byte(": ")
		iov[4] = []byte(item)
		iov[5] = []byte{'='}
		iov[6] = strconv.AppendInt(valbuf[:0], int64(value), 10)
	}

	// nothing can be done about a failed write at this point
	_, _ = k.writev(2, iov[:])
	k.exit(exitFatal)
}
