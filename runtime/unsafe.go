// File: unsafe.go
// Role: the single, narrow unsafe.Pointer cast WriteAddFloat64/LoadFloat64/
// StoreFloat64 need to reinterpret a *float64 as a *uint64 for atomic
// access. float64 and uint64 share size and alignment on every platform
// Go supports, so this reinterpretation is sound; it is confined to this
// one file so the rest of the module never touches unsafe directly.
package runtime

import "unsafe"

func pointerTo(addr *float64) unsafe.Pointer {
	return unsafe.Pointer(addr)
}
