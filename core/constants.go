package core

const (
	KeySize    = 16  // Bytes in a Key
	ValueSize  = 20  // Bytes in a Value (the reference value being indexed)
	FillerSize = 512 // Bytes of filler attached to every Record

	DefaultAmount = 5_000_000
)

// Alphabet the filler payload is drawn from.
const fillerAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
