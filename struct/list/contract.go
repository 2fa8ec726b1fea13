package list

import "fmt"

// ContractError is the panic value raised when a caller breaks a precondition
// of the list or its iterators. It is a programmer error and is never
// returned.
type ContractError struct {
	Op     string
	Reason string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("forward list: %s: %s", e.Op, e.Reason)
}

// require panics with a *ContractError when cond is false. In builds tagged
// forwardlist_unchecked Checked is false and the compiler drops the test.
func require(cond bool, op string, reason string) {
	if Checked && !cond {
		panic(&ContractError{Op: op, Reason: reason})
	}
}
