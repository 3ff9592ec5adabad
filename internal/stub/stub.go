// Package stub provides call level stubbing and validation of system call
// wrappers whose effects cannot be observed in a test.
package stub

import (
	"reflect"
	"testing"
)

// refuse to be linked into anything other than a test binary
var _ = func() struct{} {
	if !testing.Testing() {
		panic("stub imported while not in a test")
	}
	return struct{}{}
}()

// A Stub holds the expected calls of a single goroutine and the position of the next call.
type Stub struct {
	testing.TB

	want []Call
	pos  int
}

// New returns a [Stub] expecting calls in the order they appear in want.
func New(tb testing.TB, want ...Call) *Stub { return &Stub{TB: tb, want: want} }

func (s *Stub) FailNow()          { s.Helper(); panic(panicFailNow) }
func (s *Stub) Fatal(args ...any) { s.Helper(); s.Error(args...); panic(panicFatal) }
func (s *Stub) Fatalf(format string, args ...any) {
	s.Helper()
	s.Errorf(format, args...)
	panic(panicFatalf)
}

// Pos returns the number of calls consumed so far.
func (s *Stub) Pos() int { return s.pos }

// Len returns the number of expected calls.
func (s *Stub) Len() int { return len(s.want) }

// Incomplete reports an error if not every expected call was consumed.
func (s *Stub) Incomplete(name string) {
	s.Helper()
	if s.pos != len(s.want) {
		s.Errorf("%s: %d calls, want %d", name, s.pos, len(s.want))
	}
}

// Expects checks the name of the current [Call], returns it and advances.
func (s *Stub) Expects(name string) (expect *Call) {
	s.Helper()

	if s.pos == len(s.want) {
		s.Fatalf("Expects: func = %s, advancing beyond expected calls", name)
	}
	expect = &s.want[s.pos]
	if name != expect.Name {
		s.Fatalf("Expects: func = %s, want %s", name, expect.Name)
	}
	s.pos++
	return
}

// CheckArg checks an argument comparable with the == operator.
// Avoid using this with pointers.
func CheckArg[T comparable](s *Stub, arg string, got T, n int) bool {
	s.Helper()

	pos := s.pos - 1
	if pos < 0 || pos >= len(s.want) {
		panic("invalid call to CheckArg")
	}
	expect := s.want[pos]
	want, ok := expect.Args[n].(T)
	if !ok || got != want {
		s.Errorf("%s: %s = %#v, want %#v (%d)", expect.Name, arg, got, want, pos)
		return false
	}
	return true
}

// CheckArgReflect checks an argument of any type using [reflect.DeepEqual].
func CheckArgReflect(s *Stub, arg string, got any, n int) bool {
	s.Helper()

	pos := s.pos - 1
	if pos < 0 || pos >= len(s.want) {
		panic("invalid call to CheckArgReflect")
	}
	expect := s.want[pos]
	if want := expect.Args[n]; !reflect.DeepEqual(got, want) {
		s.Errorf("%s: %s = %#v, want %#v (%d)", expect.Name, arg, got, want, pos)
		return false
	}
	return true
}
