package dycrypt

import "runtime"

// Zero overwrites a byte slice with zeros. Best effort: copies of the
// data made by the runtime or the OS are out of reach.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
