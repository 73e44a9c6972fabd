package stale

// Point lost its y member after stale_strictjson.go was written.
type Point struct {
	X uint64 `json:"x"`
}
