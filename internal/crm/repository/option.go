package repository

// Filter narrows a listing. Empty fields do not filter; a non-nil empty slice matches nothing.
type Filter struct {
	IDs            []string
	OwnerID        string
	ClientIDs      []string
	OpportunityIDs []string
}

// ListOptions contains options for listing records.
type ListOptions struct {
	Filter Filter
}
