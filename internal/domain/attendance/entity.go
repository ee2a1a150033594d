package attendance

import "time"

type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckIn    *time.Time
	CheckOut   *time.Time
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
}

// StatusAbsent is the column default; status values are otherwise free text
// ("present", "absent", "half-day", ...).
const StatusAbsent = "absent"
