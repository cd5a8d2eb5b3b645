package reconcile

// ActionType represents the type of mutation action.
type ActionType string

const (
	// ActionAdd adds a key that is desired but not present.
	ActionAdd ActionType = "add"
	// ActionRemove removes a key that is present but no longer desired.
	ActionRemove ActionType = "remove"
)

// Action represents a planned mutation operation.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Key is the entity identifier.
	Key string `json:"key"`
}

// Plan is the set difference between an existing and a desired key set.
// Every slice is sorted and free of duplicates.
type Plan struct {
	// Add holds keys in the desired set that are not present yet.
	Add []string `json:"add"`

	// Remove holds present keys that are not desired anymore.
	Remove []string `json:"remove"`

	// Keep holds keys present in both sets.
	Keep []string `json:"keep"`
}

// PlanSummary provides aggregate counts for a plan.
type PlanSummary struct {
	Added   int `json:"added"`
	Removed int `json:"removed"`
	Kept    int `json:"kept"`
}
