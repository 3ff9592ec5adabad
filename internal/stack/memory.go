package stack

import (
	"bytes"
	"encoding/binary"
	"strconv"
	"unsafe"
)

// Raw implements [Memory] on the address space of the running process.
// Strings returned by Raw alias the memory they were read from.
type Raw struct{}

func (Raw) Word(addr uintptr) uintptr { return *(*uintptr)(unsafe.Pointer(addr)) }

func (Raw) String(addr uintptr) string {
	p := unsafe.Pointer(addr)
	n := 0
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	return unsafe.String((*byte)(p), n)
}

// Image is a synthetic initial stack block mapped at a fixed base address.
// Reads outside the image panic.
type Image struct {
	base uintptr
	data []byte
}

// Base returns the lowest address of img.
func (img *Image) Base() uintptr { return img.base }

// Len returns the size of img in bytes.
func (img *Image) Len() int { return len(img.data) }

func (img *Image) slice(addr uintptr) []byte {
	if addr < img.base || addr-img.base >= uintptr(len(img.data)) {
		panic("address 0x" + strconv.FormatUint(uint64(addr), 16) + " outside stack image")
	}
	return img.data[addr-img.base:]
}

func (img *Image) Word(addr uintptr) uintptr {
	p := img.slice(addr)
	if uintptr(len(p)) < WordSize {
		panic("short word at 0x" + strconv.FormatUint(uint64(addr), 16))
	}
	if WordSize == 8 {
		return uintptr(binary.NativeEndian.Uint64(p))
	}
	return uintptr(binary.NativeEndian.Uint32(p))
}

func (img *Image) String(addr uintptr) string {
	p := img.slice(addr)
	n := bytes.IndexByte(p, 0)
	if n < 0 {
		panic("unterminated string at 0x" + strconv.FormatUint(uint64(addr), 16))
	}
	return string(p[:n])
}

// Builder lays out an [Image] the way the kernel lays out a new process stack,
// with the string area placed below the vectors.
type Builder struct {
	base uintptr
	strs []byte

	argv []uintptr
	envp []uintptr
	auxv []Entry
}

// NewBuilder returns a [Builder] for an image starting at base.
func NewBuilder(base uintptr) *Builder { return &Builder{base: base} }

// String places s in the string area and returns its address.
func (b *Builder) String(s string) uintptr {
	addr := b.base + uintptr(len(b.strs))
	b.strs = append(b.strs, s...)
	b.strs = append(b.strs, 0)
	return addr
}

// Arg appends to the argument vector.
func (b *Builder) Arg(args ...string) *Builder {
	for _, s := range args {
		b.argv = append(b.argv, b.String(s))
	}
	return b
}

// Env appends to the environment vector.
func (b *Builder) Env(env ...string) *Builder {
	for _, s := range env {
		b.envp = append(b.envp, b.String(s))
	}
	return b
}

// Aux appends an integer-valued entry to the auxiliary vector.
func (b *Builder) Aux(tag Tag, val uintptr) *Builder {
	b.auxv = append(b.auxv, Entry{tag, val})
	return b
}

// AuxString appends an entry to the auxiliary vector pointing to a copy of s.
func (b *Builder) AuxString(tag Tag, s string) *Builder { return b.Aux(tag, b.String(s)) }

// Build returns the resulting [Image] and the address of its argument count.
func (b *Builder) Build() (img *Image, sp uintptr) {
	data := make([]byte, len(b.strs), len(b.strs)+16+
		int(WordSize)*(3+len(b.argv)+len(b.envp)+2*(len(b.auxv)+1)))
	copy(data, b.strs)
	for len(data)%16 != 0 {
		data = append(data, 0)
	}
	sp = b.base + uintptr(len(data))

	put := func(v uintptr) {
		if WordSize == 8 {
			data = binary.NativeEndian.AppendUint64(data, uint64(v))
		} else {
			data = binary.NativeEndian.AppendUint32(data, uint32(v))
		}
	}
	put(uintptr(len(b.argv)))
	for _, p := range b.argv {
		put(p)
	}
	put(0)
	for _, p := range b.envp {
		put(p)
	}
	put(0)
	for _, e := range b.auxv {
		put(uintptr(e.Tag))
		put(e.Val)
	}
	put(uintptr(AT_NULL))
	put(0)

	return &Image{b.base, data}, sp
}
