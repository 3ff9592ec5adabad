package stub

// ExpectArgs are the arguments a [Call] is expected with, by position.
// A dispatcher method may also stash values for its caller in a trailing slot.
type ExpectArgs = [4]any

// A Call is one expected system call: what it is, what it is called with,
// and what it hands back.
type Call struct {
	Name string
	Args ExpectArgs

	// Returned on success; the dispatcher method asserts its own type.
	Ret any
	// Injected failure, or nil.
	Err error
}

// Error returns the injected error of k, or [ErrCheck] if any of ok is false.
// Checks are evaluated by the caller, so every mismatch is reported before Error is reached.
func (k *Call) Error(ok ...bool) error {
	for _, v := range ok {
		if !v {
			return ErrCheck
		}
	}
	return k.Err
}
