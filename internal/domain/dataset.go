package domain

// Observation is a single generated measurement. Immutable once created; its
// lifetime ends at CSV serialization.
type Observation struct {
	ID    string
	Group string
	Value float64
}

// Dataset is an ordered sequence of observations, one block per group,
// blocks concatenated in group-declaration order.
type Dataset struct {
	Variable     string
	Observations []Observation
}

// Len returns the total number of observations.
func (d *Dataset) Len() int {
	return len(d.Observations)
}

// Groups returns the distinct group labels in first-seen order.
func (d *Dataset) Groups() []string {
	var groups []string
	seen := make(map[string]bool)
	for _, o := range d.Observations {
		if !seen[o.Group] {
			seen[o.Group] = true
			groups = append(groups, o.Group)
		}
	}
	return groups
}

// GroupValues returns the values belonging to group, in draw order.
func (d *Dataset) GroupValues(group string) []float64 {
	var values []float64
	for _, o := range d.Observations {
		if o.Group == group {
			values = append(values, o.Value)
		}
	}
	return values
}
