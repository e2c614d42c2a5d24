package conv

// Pointer returns a pointer to value. Used when populating the pointer-typed
// optional fields of the MCP schema structs, which cannot take the address of
// a literal directly.
func Pointer[T any](value T) *T {
	return &value
}
