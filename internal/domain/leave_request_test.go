package domain

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestInclusiveDayCount(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"single day", date(2024, 3, 1), date(2024, 3, 1), 1},
		{"three days", date(2024, 3, 1), date(2024, 3, 3), 3},
		{"across month boundary", date(2024, 1, 30), date(2024, 2, 2), 4},
		{"across leap day", date(2024, 2, 28), date(2024, 3, 1), 3},
		{"full week", date(2024, 6, 10), date(2024, 6, 16), 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := InclusiveDayCount(tc.start, tc.end); got != tc.want {
				t.Fatalf("InclusiveDayCount(%v, %v) = %d, want %d", tc.start, tc.end, got, tc.want)
			}
		})
	}
}

func TestInclusiveDayCountIgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC)
	end := time.Date(2024, 3, 3, 0, 1, 0, 0, time.UTC)
	if got := InclusiveDayCount(start, end); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
}

func TestTruncateToDate(t *testing.T) {
	in := time.Date(2024, 5, 7, 18, 30, 45, 123, time.UTC)
	got := TruncateToDate(in)
	want := date(2024, 5, 7)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestEnumValidity(t *testing.T) {
	if !RoleEmployee.Valid() || !RoleAdmin.Valid() {
		t.Fatal("known roles must be valid")
	}
	if Role("MANAGER").Valid() {
		t.Fatal("unknown role must be invalid")
	}
	if !LeaveTypeAnnual.Valid() || !LeaveTypeSick.Valid() || !LeaveTypeCasual.Valid() {
		t.Fatal("known leave types must be valid")
	}
	if LeaveType("SABBATICAL").Valid() {
		t.Fatal("unknown leave type must be invalid")
	}
	if !LeaveStatusPending.Valid() || !LeaveStatusApproved.Valid() || !LeaveStatusRejected.Valid() {
		t.Fatal("known statuses must be valid")
	}
	if LeaveStatus("CANCELLED").Valid() {
		t.Fatal("unknown status must be invalid")
	}
}
