// Package stack decodes the initial process stack handed to a new process image by the kernel.
package stack

import "unsafe"

// WordSize is the size in bytes of a single stack word.
const WordSize = unsafe.Sizeof(uintptr(0))

// Memory provides read access to a region holding an initial stack block.
type Memory interface {
	// Word returns the native word stored at addr.
	Word(addr uintptr) uintptr
	// String returns the NUL-terminated string starting at addr.
	String(addr uintptr) string
}

// Block holds the vectors of an initial stack block.
// Argv, Envp and Auxv do not include their terminating entries.
type Block struct {
	Argc int
	Argv []string
	Envp []string
	Auxv []Entry

	mem Memory
}

// CString returns the NUL-terminated string at addr in the memory b was decoded from.
// This is used for pointer-valued auxiliary vector entries.
func (b *Block) CString(addr uintptr) string { return b.mem.String(addr) }

// Decode decodes the initial stack block starting at sp.
//
// The layout is trusted completely: argc at sp, argv immediately after it,
// envp after the NULL terminating argv, and auxv after the NULL terminating envp,
// ending at the first entry tagged [AT_NULL].
func Decode(m Memory, sp uintptr) *Block {
	b := &Block{mem: m}

	b.Argc = int(m.Word(sp))
	argv := sp + WordSize
	b.Argv = make([]string, b.Argc)
	for i := range b.Argc {
		b.Argv[i] = m.String(m.Word(argv + uintptr(i)*WordSize))
	}

	ep := argv + uintptr(b.Argc+1)*WordSize
	for ; ; ep += WordSize {
		p := m.Word(ep)
		if p == 0 {
			break
		}
		b.Envp = append(b.Envp, m.String(p))
	}

	for av := ep + WordSize; ; av += 2 * WordSize {
		e := Entry{Tag(m.Word(av)), m.Word(av + WordSize)}
		if e.Tag == AT_NULL {
			break
		}
		b.Auxv = append(b.Auxv, e)
	}

	return b
}

// FromRuntime builds a [Block] from vectors already decoded by the runtime.
// Pointer-valued entries of auxv must reference memory of the running process.
func FromRuntime(argv, envp []string, auxv [][2]uintptr) *Block {
	b := &Block{Argc: len(argv), Argv: argv, Envp: envp, mem: Raw{}}
	for _, e := range auxv {
		if Tag(e[0]) == AT_NULL {
			break
		}
		b.Auxv = append(b.Auxv, Entry{Tag(e[0]), e[1]})
	}
	return b
}
