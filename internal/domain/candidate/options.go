package candidate

// ListOptions provides filtering options for listing candidates.
// Empty slices mean "no filter applied" and match every record.
type ListOptions struct {
	Stages    []Stage
	Positions []string
}

// Filter combines the narrowing passes used by the roster view.
// Query, Positions, and Stages are independent predicates intersected
// over the full set; each empty axis matches everything.
type Filter struct {
	Query     string
	Positions []string
	Stages    []Stage
}
