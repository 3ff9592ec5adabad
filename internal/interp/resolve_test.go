package interp

import (
	"strings"
	"syscall"
	"testing"

	"git.gensokyo.uk/security/nacl-interp/internal/stack"
	"git.gensokyo.uk/security/nacl-interp/internal/stub"
	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	long := "/" + strings.Repeat("n", unix.PathMax+16)

	testCases := []struct {
		name    string
		block   func(b *stack.Builder)
		want    []stub.Call
		wantCtx *Context
		wantErr error
	}{
		{"empty auxv", func(b *stack.Builder) { b.Arg("a0") }, []stub.Call{
			call("readlink", stub.ExpectArgs{selfExe, unix.PathMax}, nil, syscall.ENOENT),
		}, &Context{Filename: "a0", Secure: true}, &PolicyError{"a0"}},

		{"permissive", func(b *stack.Builder) {
			b.Arg("a0").
				Aux(stack.AT_SECURE, 1).
				Aux(stack.AT_SECURE, 0).
				AuxString(stack.AT_EXECFN, "/tmp/a.nexe").
				AuxString(stack.AT_PLATFORM, "armv7l")
		}, nil, &Context{Filename: "/tmp/a.nexe", Platform: "armv7l"}, nil},

		{"last entry wins", func(b *stack.Builder) {
			b.Arg("a0").
				Aux(stack.AT_SECURE, 0).
				AuxString(stack.AT_EXECFN, "/tmp/a.nexe").
				AuxString(stack.AT_EXECFN, "/tmp/b.nexe").
				AuxString(stack.AT_PLATFORM, "i386").
				AuxString(stack.AT_PLATFORM, "i686")
		}, nil, &Context{Filename: "/tmp/b.nexe", Platform: "i686"}, nil},

		{"zero pointers", func(b *stack.Builder) {
			b.Arg("a0").
				Aux(stack.AT_SECURE, 0).
				Aux(stack.AT_EXECFN, 0).
				Aux(stack.AT_PLATFORM, 0)
		}, []stub.Call{
			call("readlink", stub.ExpectArgs{selfExe, unix.PathMax}, "/proc/self/exe target", nil),
		}, &Context{Filename: "/proc/self/exe target", Platform: Platform}, nil},

		{"truncated", func(b *stack.Builder) { b.Arg("a0").Aux(stack.AT_SECURE, 0) }, []stub.Call{
			call("readlink", stub.ExpectArgs{selfExe, unix.PathMax}, long, nil),
		}, &Context{Filename: long[:unix.PathMax], Platform: Platform}, nil},

		{"secure platform unresolved", func(b *stack.Builder) {
			b.Arg("a0").Aux(stack.AT_SECURE, 2).AuxString(stack.AT_EXECFN, "e")
		}, nil, &Context{Filename: "e", Secure: true}, &PolicyError{"e"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			k := &kstub{stub.New(t, tc.want...)}
			ctx, err := resolve(k, newBlock(tc.block))
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantCtx, ctx)
			k.Incomplete("resolve")
		})
	}
}

func TestPlatform(t *testing.T) {
	t.Parallel()

	assert.Contains(t, []string{"x86_64", "i386", "arm", "mips", "aarch64", "riscv64"}, Platform)
}
