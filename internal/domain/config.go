package domain

// DefaultReadSize caps a read when the caller gives no size.
const DefaultReadSize = 10
