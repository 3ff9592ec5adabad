package stub

import "testing"

type panicValue uintptr

const (
	// PanicExit is a magic panic value treated as a simulated exit.
	PanicExit panicValue = 0xdeadbeef

	panicFailNow panicValue = 0xcafe0000 + iota
	panicFatal
	panicFatalf
)

// HandleExit must be deferred before calling into code instrumented by a [Stub].
// A simulated exit is recovered silently, a failed check marks tb as failed,
// and any other value is repanicked.
func HandleExit(tb testing.TB) {
	r := recover()
	if r == nil {
		return
	}
	switch v, _ := r.(panicValue); v {
	case PanicExit:
		return

	case panicFailNow, panicFatal, panicFatalf:
		tb.FailNow()

	default:
		panic(r)
	}
}
