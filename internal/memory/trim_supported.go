//go:build !js && !wasip1

package memory

const trimSupported = true
