package domain

import "time"

// LeaveType enumerates the categories a balance is kept for.
type LeaveType string

const (
	LeaveTypeAnnual LeaveType = "ANNUAL"
	LeaveTypeSick   LeaveType = "SICK"
	LeaveTypeCasual LeaveType = "CASUAL"
)

// Valid reports whether the leave type belongs to the enumeration.
func (t LeaveType) Valid() bool {
	return t == LeaveTypeAnnual || t == LeaveTypeSick || t == LeaveTypeCasual
}

// LeaveStatus enumerates lifecycle states for leave requests.
// APPROVED and REJECTED are terminal.
type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "PENDING"
	LeaveStatusApproved LeaveStatus = "APPROVED"
	LeaveStatusRejected LeaveStatus = "REJECTED"
)

// Valid reports whether the status belongs to the enumeration.
func (s LeaveStatus) Valid() bool {
	return s == LeaveStatusPending || s == LeaveStatusApproved || s == LeaveStatusRejected
}

// LeaveRequest is the aggregate for a single leave application.
// Days is always derived server-side from the date range.
type LeaveRequest struct {
	ID           string
	UserID       string
	LeaveType    LeaveType
	StartDate    time.Time
	EndDate      time.Time
	Days         int
	Reason       string
	Status       LeaveStatus
	DecisionBy   *string
	DecisionNote *string
	DecidedAt    *time.Time
	CreatedAt    time.Time
}

// LeaveRequestWithOwner is the admin read model joining the owner's name.
type LeaveRequestWithOwner struct {
	LeaveRequest
	EmployeeName string
}

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// TruncateToDate drops the time-of-day component, keeping the calendar day in UTC.
func TruncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// InclusiveDayCount returns the number of calendar days spanned by [start, end],
// counting both endpoints. Time-of-day components are ignored.
func InclusiveDayCount(start, end time.Time) int {
	a := TruncateToDate(start)
	b := TruncateToDate(end)
	return int(b.Sub(a).Hours()/24) + 1
}
