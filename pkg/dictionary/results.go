package dictionary

import "fmt"

// Action is what Add did with an incoming record.
type Action int

const (
	Inserted Action = iota // key was new, record stored
	Replaced               // duplicate key, comparator preferred the incoming record
	Kept                   // duplicate key, incumbent record kept
)

func (a Action) String() string {
	switch a {
	case Inserted:
		return "Insert New Entry"
	case Replaced:
		return "Replace Existing Entry"
	case Kept:
		return "Keep Existing Entry"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// records the outcome of adding one record, for reporting
type AddResult struct {
	Key      string
	Action   Action
	Previous Record // record displaced by a replacement, nil otherwise
}

func (r *AddResult) String() string {
	str := fmt.Sprintf("Action Taken: %s, Key: %s", r.Action, r.Key)
	if r.Action == Replaced {
		str += fmt.Sprintf(", Displaced: %v", r.Previous)
	}
	return str
}
