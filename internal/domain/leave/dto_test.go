package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() CreateLeaveRequest {
	return CreateLeaveRequest{
		EmployeeID: "7b6e2c0a-41d5-4c52-9f0e-8d3a6b1c2e4f",
		LeaveType:  "annual",
		StartDate:  "2025-07-01",
		EndDate:    "2025-07-03",
		Days:       3,
		Reason:     "Family trip",
	}
}

func TestCreateLeaveRequestValidate(t *testing.T) {
	assert.NoError(t, func() error { r := validCreateRequest(); return r.Validate() }())

	cases := []struct {
		name   string
		mutate func(*CreateLeaveRequest)
	}{
		{"missing employee_id", func(r *CreateLeaveRequest) { r.EmployeeID = "" }},
		{"malformed employee_id", func(r *CreateLeaveRequest) { r.EmployeeID = "abc" }},
		{"missing leave_type", func(r *CreateLeaveRequest) { r.LeaveType = "" }},
		{"bad start_date", func(r *CreateLeaveRequest) { r.StartDate = "July 1st" }},
		{"bad end_date", func(r *CreateLeaveRequest) { r.EndDate = "" }},
		{"end before start", func(r *CreateLeaveRequest) { r.EndDate = "2025-06-30" }},
		{"zero days", func(r *CreateLeaveRequest) { r.Days = 0 }},
		{"missing reason", func(r *CreateLeaveRequest) { r.Reason = "  " }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := validCreateRequest()
			c.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}

func TestCreateLeaveRequestSingleDay(t *testing.T) {
	req := validCreateRequest()
	req.EndDate = req.StartDate
	req.Days = 1
	require.NoError(t, req.Validate())

	start, end := req.ParsedDates()
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, start, end)
}

func TestUpdateLeaveRequestValidate(t *testing.T) {
	days := 2
	badDays := 0
	status := StatusApproved

	assert.NoError(t, (&UpdateLeaveRequest{Days: &days, Status: &status}).Validate())
	assert.Error(t, (&UpdateLeaveRequest{Days: &badDays}).Validate())

	badDate := "tomorrow"
	assert.Error(t, (&UpdateLeaveRequest{StartDate: &badDate}).Validate())
}
