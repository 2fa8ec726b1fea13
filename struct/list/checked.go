//go:build !forwardlist_unchecked

package list

// Checked reports whether preconditions are asserted.
const Checked = true
