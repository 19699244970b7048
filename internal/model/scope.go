package model

// Scope carries per-request caller identity through the use case layer.
// Authentication itself is owned by the host application; by the time a
// request reaches a use case the scope is already established.
type Scope struct {
	UserID    string
	RequestID string
}
