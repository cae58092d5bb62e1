//go:build !cgo

package compress

const gozstdAvailable = false

// NewGozstdCompressor requires a cgo build. Without cgo the candidate is
// recorded as unavailable and this constructor is never called.
func NewGozstdCompressor() Codec {
	return nil
}
