package stack

import (
	"bytes"
	"errors"
	"os"
	"strconv"

	"golang.org/x/sys/unix"
)

const (
	// procSelfStat is the procfs status file of the calling process.
	procSelfStat = "/proc/self/stat"
	// procSelfMaps lists the memory mappings of the calling process.
	procSelfMaps = "/proc/self/maps"

	// fieldStartStack is the index of startstack counting from the state field,
	// the first field following the parenthesised command name.
	fieldStartStack = 28 - 3
)

var (
	// ErrStartStack is returned by [Self] if procfs does not report the start of the stack.
	ErrStartStack = errors.New("start of stack not reported by procfs")
)

// ArgcMismatchError is returned by [Self] if the word at the reported start of
// the stack does not match the argument count seen by the runtime.
type ArgcMismatchError struct {
	Addr uintptr
	Got  uintptr
	Want int
}

func (e *ArgcMismatchError) Error() string {
	return "argument count " + strconv.FormatUint(uint64(e.Got), 10) +
		" at 0x" + strconv.FormatUint(uint64(e.Addr), 16) +
		" does not match " + strconv.Itoa(e.Want)
}

// OutsideStackError is returned by [Self] if the reported start of the stack
// does not fall within the stack mapping of the main thread.
type OutsideStackError struct {
	Addr uintptr
	// Start and End bound the stack mapping, or are both zero if it was not found.
	Start, End uintptr
}

func (e *OutsideStackError) Error() string {
	if e.Start == 0 && e.End == 0 {
		return "stack mapping not found"
	}
	return "address 0x" + strconv.FormatUint(uint64(e.Addr), 16) +
		" outside stack mapping 0x" + strconv.FormatUint(uint64(e.Start), 16) +
		"-0x" + strconv.FormatUint(uint64(e.End), 16)
}

// stackMapping returns the bounds of the mapping labelled [stack] in maps.
func stackMapping(maps []byte) (start, end uintptr, ok bool) {
	for line := range bytes.Lines(maps) {
		fields := bytes.Fields(line)
		if len(fields) < 6 || string(fields[5]) != "[stack]" {
			continue
		}
		lo, hi, found := bytes.Cut(fields[0], []byte{'-'})
		if !found {
			return 0, 0, false
		}
		s, err := strconv.ParseUint(string(lo), 16, 64)
		if err != nil {
			return 0, 0, false
		}
		e, err := strconv.ParseUint(string(hi), 16, 64)
		if err != nil {
			return 0, 0, false
		}
		return uintptr(s), uintptr(e), true
	}
	return 0, 0, false
}

// startStack returns the address of the argument count of the initial stack block,
// as recorded by the kernel when the process image was set up.
func startStack(stat []byte) (uintptr, error) {
	// comm may contain any byte including parentheses and spaces
	i := bytes.LastIndexByte(stat, ')')
	if i < 0 {
		return 0, &os.PathError{Op: "parse", Path: procSelfStat, Err: unix.EINVAL}
	}
	fields := bytes.Fields(stat[i+1:])
	if len(fields) <= fieldStartStack {
		return 0, &os.PathError{Op: "parse", Path: procSelfStat, Err: unix.EINVAL}
	}

	if v, err := strconv.ParseUint(string(fields[fieldStartStack]), 10, 64); err != nil {
		return 0, &os.PathError{Op: "parse", Path: procSelfStat, Err: err}
	} else if v == 0 {
		return 0, ErrStartStack
	} else {
		return uintptr(v), nil
	}
}

// Self decodes the initial stack block of the running process.
//
// This relies on the runtime never writing above the stack pointer it was started with,
// which holds for the main thread of a Go program.
func Self() (*Block, error) {
	stat, err := os.ReadFile(procSelfStat)
	if err != nil {
		return nil, err
	}
	sp, err := startStack(stat)
	if err != nil {
		return nil, err
	}

	maps, err := os.ReadFile(procSelfMaps)
	if err != nil {
		return nil, err
	}
	if start, end, ok := stackMapping(maps); !ok || sp < start || sp+WordSize > end {
		return nil, &OutsideStackError{sp, start, end}
	}

	if argc := (Raw{}).Word(sp); argc != uintptr(len(os.Args)) {
		return nil, &ArgcMismatchError{sp, argc, len(os.Args)}
	}
	return Decode(Raw{}, sp), nil
}

// Runtime rebuilds the initial stack block from the vectors decoded by the runtime at startup.
func Runtime() (*Block, error) {
	auxv, err := unix.Auxv()
	if err != nil {
		return nil, err
	}
	return FromRuntime(os.Args, os.Environ(), auxv), nil
}
