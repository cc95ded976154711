package notification

// Category names one unread counter. Each category has its own candidate set
// and its own viewed cursor per user.
type Category string

const (
	// CategoryApproved counts the user's own requests approved since the
	// user last looked.
	CategoryApproved Category = "approved"
	// CategoryPending counts requests waiting in an approver's queue that
	// arrived since the approver last looked.
	CategoryPending Category = "pending"
)

func (c Category) Valid() bool {
	return c == CategoryApproved || c == CategoryPending
}
