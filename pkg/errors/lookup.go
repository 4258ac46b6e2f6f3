package errors

// NewNotFoundError creates the normal "no live record for this key" result
// Get returns. This is not treated as a failure by callers; it is a
// regular outcome of a successful lookup that found a tombstone or nothing.
func NewNotFoundError(key string) *StorageError {
	return NewStorageError(
		nil, ErrorCodeKeyNotFound, "key not found",
	).WithDetail("key", key).WithDetail("operation", "Get")
}
