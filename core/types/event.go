package types

// Event is the raw payload emitted by the engine during state transitions.
// Attributes hold string-rendered values for downstream indexers.
type Event struct {
	Type       string            `json:"type"`
	Attributes map[string]string `json:"attributes"`
}
