package stub_test

import (
	"syscall"
	"testing"

	"git.gensokyo.uk/security/nacl-interp/internal/stub"
	"github.com/stretchr/testify/assert"
)

func TestUniqueError(t *testing.T) {
	t.Parallel()

	assert.EqualError(t, stub.UniqueError(0xbad), "injected error 0xbad")
	assert.EqualError(t, stub.UniqueError(0), "injected error 0x0")

	assert.NotErrorIs(t, stub.UniqueError(0), syscall.ENOTRECOVERABLE)
	assert.NotErrorIs(t, stub.UniqueError(0), stub.UniqueError(1))
	assert.ErrorIs(t, stub.UniqueError(0xbad), stub.UniqueError(0xbad))
	assert.ErrorIs(t, &wrapped{stub.UniqueError(0xbad)}, stub.UniqueError(0xbad))
}

type wrapped struct{ error }

func (w *wrapped) Unwrap() error { return w.error }
