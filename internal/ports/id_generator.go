package ports

// IDGenerator produces observation identifiers. Implementations are not safe
// for concurrent use; generation is strictly sequential.
type IDGenerator interface {
	// Next returns the next fixed-width identifier.
	Next() string
}
