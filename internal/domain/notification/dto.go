package notification

// UnreadCounts is the per-category badge state for one user.
type UnreadCounts struct {
	Approved int `json:"approved"`
	Pending  int `json:"pending"`
}
