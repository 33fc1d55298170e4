// Package response defines the plain data envelopes Next Era services use to
// carry results between layers: simple message and status envelopes plus
// generic list containers for paginated and cached data. The types are pure
// structural carriers with no behavior.
package response

// Message wraps a human-readable message.
type Message struct {
	Message string `json:"message"`
}

// Data carries a list of items together with the total count available,
// which may exceed len(Data) for paginated results.
type Data[T any] struct {
	Data  []T   `json:"data"`
	Total int64 `json:"total"`
}

// Service reports an upstream service outcome.
type Service struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}

// Cache is the container stored in a cache for a list of items and its
// total count. It mirrors Data but is kept distinct so cached payloads and
// live responses cannot be mixed up.
type Cache[T any] struct {
	Data  []T   `json:"data"`
	Total int64 `json:"total"`
}
