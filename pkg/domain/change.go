package domain

// Action labels the kind of mutation captured by a Change.
type Action string

// Mutation actions emitted by stores after a committed collection change.
const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Change describes one committed store mutation. Stores hand a Change to
// every subscribed observer synchronously after the collection (and its
// snapshot) have been updated.
type Change struct {
	Entity EntityType `json:"entity"`
	Action Action     `json:"action"`
	ID     string     `json:"id"`
}
