//go:build js || wasip1

package memory

// The wasm runtimes never hand linear memory back to the host.
const trimSupported = false
