package model

// Snapshot is a point-in-time read of the collections the alert rules consume.
// Collections are unfiltered; ownership scoping happens in the engine.
type Snapshot struct {
	Clients       []Client
	Opportunities []Opportunity
	Invoices      []Invoice
	Prospects     []Prospect
}
