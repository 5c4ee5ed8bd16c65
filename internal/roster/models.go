package roster

import "time"

// Status is the admissions decision recorded on an application.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusInReview Status = "In Review"
	StatusAccepted Status = "Accepted"
	StatusRejected Status = "Rejected"
)

// Statuses lists every known status in display order.
func Statuses() []Status {
	return []Status{StatusPending, StatusInReview, StatusAccepted, StatusRejected}
}

// Known reports whether s is one of the four recognised statuses.
func (s Status) Known() bool {
	switch s {
	case StatusPending, StatusInReview, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Category groups passport stamps.
type Category string

const (
	CategoryTechnical     Category = "Technical"
	CategoryLeadership    Category = "Leadership"
	CategoryCommunication Category = "Communication"
	CategoryResearch      Category = "Research"
	CategoryCommunity     Category = "Community"
)

// Categories lists every stamp category in display order.
func Categories() []Category {
	return []Category{CategoryTechnical, CategoryLeadership, CategoryCommunication, CategoryResearch, CategoryCommunity}
}

// ParseCategory matches a category name case-insensitively.
func ParseCategory(name string) (Category, bool) {
	for _, c := range Categories() {
		if equalFold(string(c), name) {
			return c, true
		}
	}
	return "", false
}

// Stamp is an achievement awarded to a single candidate.
type Stamp struct {
	ID          int
	Name        string
	Category    Category
	EarnedDate  time.Time
	Description string
	Evidence    string
}

// Candidate is one application record.
type Candidate struct {
	ID                 int
	Name               string
	Program            string
	GPA                float64
	Status             Status
	AppliedDate        time.Time
	Email              string
	Phone              string
	Address            string
	BirthDate          time.Time
	ExpectedGraduation string
	Stamps             []Stamp
}

const (
	MinGPA = 0.0
	MaxGPA = 4.0
)

// DateLayout is the storage layout for calendar dates.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar date as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}
