package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		desired  []string
		want     Plan
	}{
		{
			name:     "Empty to set",
			existing: nil,
			desired:  []string{"b", "a"},
			want:     Plan{Add: []string{"a", "b"}, Remove: []string{}, Keep: []string{}},
		},
		{
			name:     "Set to empty",
			existing: []string{"a", "b"},
			desired:  []string{},
			want:     Plan{Add: []string{}, Remove: []string{"a", "b"}, Keep: []string{}},
		},
		{
			name:     "Overlap",
			existing: []string{"a", "b", "c"},
			desired:  []string{"c", "d", "a"},
			want:     Plan{Add: []string{"d"}, Remove: []string{"b"}, Keep: []string{"a", "c"}},
		},
		{
			name:     "Duplicates collapse",
			existing: []string{"a"},
			desired:  []string{"a", "a", "b", "b"},
			want:     Plan{Add: []string{"b"}, Remove: []string{}, Keep: []string{"a"}},
		},
		{
			name:     "Case sensitive",
			existing: []string{"Drama"},
			desired:  []string{"drama"},
			want:     Plan{Add: []string{"drama"}, Remove: []string{"Drama"}, Keep: []string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Diff(tt.existing, tt.desired))
		})
	}
}

func TestPlan_IsNoop(t *testing.T) {
	assert.True(t, Diff([]string{"a", "b"}, []string{"b", "a", "a"}).IsNoop())
	assert.True(t, Diff(nil, nil).IsNoop())
	assert.False(t, Diff([]string{"a"}, nil).IsNoop())
}

func TestPlan_ActionsSummary(t *testing.T) {
	plan := Diff([]string{"a", "b"}, []string{"b", "c"})

	assert.Equal(t, []Action{
		{Type: ActionRemove, Key: "a"},
		{Type: ActionAdd, Key: "c"},
	}, plan.Actions())
	assert.Equal(t, PlanSummary{Added: 1, Removed: 1, Kept: 1}, plan.Summary())
}

func TestDistinct(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Distinct([]string{"b", "a", "b"}))
	assert.Equal(t, []string{}, Distinct(nil))
}
