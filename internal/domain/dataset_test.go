package domain

import (
	"reflect"
	"testing"
)

func TestDatasetGroups(t *testing.T) {
	ds := &Dataset{
		Variable: "Length",
		Observations: []Observation{
			{ID: "a", Group: "Control", Value: 1},
			{ID: "b", Group: "Control", Value: 2},
			{ID: "c", Group: "Treated", Value: 3},
			{ID: "d", Group: "Treated", Value: 4},
		},
	}

	if got := ds.Len(); got != 4 {
		t.Errorf("expected 4 observations, got %d", got)
	}

	groups := ds.Groups()
	if !reflect.DeepEqual(groups, []string{"Control", "Treated"}) {
		t.Errorf("unexpected groups: %v", groups)
	}

	values := ds.GroupValues("Treated")
	if !reflect.DeepEqual(values, []float64{3, 4}) {
		t.Errorf("unexpected values: %v", values)
	}

	if values := ds.GroupValues("missing"); values != nil {
		t.Errorf("expected nil for unknown group, got %v", values)
	}
}
