package stub

import (
	"errors"
	"strconv"
)

// ErrCheck stands in for the injected error of a [Call] made with unexpected arguments,
// so the code under test takes its failure path instead of proceeding on bad input.
var ErrCheck = errors.New("call made with unexpected arguments")

// UniqueError is injected where an error no kernel would return is wanted.
// It matches, under [errors.Is], only a UniqueError holding the same number.
type UniqueError uintptr

func (e UniqueError) Error() string {
	return "injected error 0x" + strconv.FormatUint(uint64(e), 16)
}

func (e UniqueError) Is(target error) bool {
	u, ok := target.(UniqueError)
	return ok && u == e
}
