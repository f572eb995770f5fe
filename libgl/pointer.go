package libgl

import "unsafe"

// Pointer returns the address of the first element of data, or nil when data is empty.
func Pointer[T any](data []T) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Pointer(&data[0])
}

// SizeOf returns the size of data in bytes.
func SizeOf[T any](data []T) int {
	var zero T
	return len(data) * int(unsafe.Sizeof(zero))
}
