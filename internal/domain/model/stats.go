package model

// StoreStats is the admin dashboard rollup. Counters reflect the moment of
// the read; no snapshot isolation is implied.
type StoreStats struct {
	TotalUsers      int64
	TotalNotes      int64
	TotalOrders     int64
	CompletedOrders int64
	PendingOrders   int64
	TotalRevenue    float64
	TotalContacts   int64
}
