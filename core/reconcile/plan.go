package reconcile

import "sort"

// Diff plans the changes that turn existing into desired.
// Both inputs are treated as sets: order and repetition are ignored.
func Diff(existing, desired []string) Plan {
	have := toSet(existing)
	want := toSet(desired)

	plan := Plan{
		Add:    []string{},
		Remove: []string{},
		Keep:   []string{},
	}

	for key := range want {
		if _, ok := have[key]; ok {
			plan.Keep = append(plan.Keep, key)
		} else {
			plan.Add = append(plan.Add, key)
		}
	}
	for key := range have {
		if _, ok := want[key]; !ok {
			plan.Remove = append(plan.Remove, key)
		}
	}

	sort.Strings(plan.Add)
	sort.Strings(plan.Remove)
	sort.Strings(plan.Keep)

	return plan
}

// Distinct returns the sorted, de-duplicated keys.
func Distinct(keys []string) []string {
	set := toSet(keys)
	out := make([]string, 0, len(set))
	for key := range set {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// IsNoop reports whether applying the plan changes nothing.
func (p Plan) IsNoop() bool {
	return len(p.Add) == 0 && len(p.Remove) == 0
}

// Actions lists the plan as individual actions, removals first.
func (p Plan) Actions() []Action {
	actions := make([]Action, 0, len(p.Add)+len(p.Remove))
	for _, key := range p.Remove {
		actions = append(actions, Action{Type: ActionRemove, Key: key})
	}
	for _, key := range p.Add {
		actions = append(actions, Action{Type: ActionAdd, Key: key})
	}
	return actions
}

// Summary returns aggregate counts for the plan.
func (p Plan) Summary() PlanSummary {
	return PlanSummary{
		Added:   len(p.Add),
		Removed: len(p.Remove),
		Kept:    len(p.Keep),
	}
}

func toSet(keys []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		set[key] = struct{}{}
	}
	return set
}
