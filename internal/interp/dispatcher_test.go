package interp

import (
	"unsafe"

	"git.gensokyo.uk/security/nacl-interp/internal/stack"
	"git.gensokyo.uk/security/nacl-interp/internal/stub"
)

// call initialises a [stub.Call].
func call(name string, args stub.ExpectArgs, ret any, err error) stub.Call {
	return stub.Call{Name: name, Args: args, Ret: ret, Err: err}
}

// testBase is the address of synthetic stack images.
const testBase = 0x10000

// newBlock decodes a synthetic stack block populated by f.
func newBlock(f func(b *stack.Builder)) *stack.Block {
	b := stack.NewBuilder(testBase)
	f(b)
	img, sp := b.Build()
	return stack.Decode(img, sp)
}

type kstub struct{ *stub.Stub }

func (k *kstub) lockOSThread() { k.Helper(); k.Expects("lockOSThread") }

func (k *kstub) readlink(name string, buf []byte) (int, error) {
	k.Helper()
	expect := k.Expects("readlink")
	if err := expect.Error(
		stub.CheckArg(k.Stub, "name", name, 0),
		stub.CheckArg(k.Stub, "len", len(buf), 1)); err != nil {
		return -1, err
	}
	return copy(buf, expect.Ret.(string)), nil
}

func (k *kstub) writev(fd int, iovs [][]byte) (int, error) {
	k.Helper()
	expect := k.Expects("writev")

	var data []byte
	for _, iov := range iovs {
		data = append(data, iov...)
	}
	if err := expect.Error(
		stub.CheckArg(k.Stub, "fd", fd, 0),
		stub.CheckArg(k.Stub, "iovcnt", len(iovs), 1),
		stub.CheckArg(k.Stub, "data", string(data), 2)); err != nil {
		return 0, err
	}
	return len(data), nil
}

func (k *kstub) execve(argv0 string, argv, envv []string) error {
	k.Helper()
	expect := k.Expects("execve")

	// the environment must be the decoded vector itself
	envOk := true
	if want, ok := expect.Args[3].([]string); ok && unsafe.SliceData(want) != unsafe.SliceData(envv) {
		k.Errorf("execve: envv %p, want %p", unsafe.SliceData(envv), unsafe.SliceData(want))
		envOk = false
	}
	return expect.Error(
		stub.CheckArg(k.Stub, "argv0", argv0, 0),
		stub.CheckArgReflect(k.Stub, "argv", argv, 1),
		stub.CheckArgReflect(k.Stub, "envv", envv, 2),
		envOk)
}

func (k *kstub) exit(code int) {
	k.Helper()
	k.Expects("exit")
	if !stub.CheckArg(k.Stub, "code", code, 0) {
		k.FailNow()
	}
	panic(stub.PanicExit)
}
