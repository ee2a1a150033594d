package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEmployeeID = "7b6e2c0a-41d5-4c52-9f0e-8d3a6b1c2e4f"

func strPtr(s string) *string { return &s }

func TestMarkAttendanceRequestValidate(t *testing.T) {
	cases := []struct {
		name    string
		req     MarkAttendanceRequest
		wantErr bool
	}{
		{
			"valid without check-in",
			MarkAttendanceRequest{EmployeeID: testEmployeeID, Date: "2025-06-02", Status: "present"},
			false,
		},
		{
			"valid with check-in",
			MarkAttendanceRequest{EmployeeID: testEmployeeID, Date: "2025-06-02", Status: "present", CheckIn: strPtr("2025-06-02T08:30:00Z")},
			false,
		},
		{
			"missing employee_id",
			MarkAttendanceRequest{Date: "2025-06-02", Status: "present"},
			true,
		},
		{
			"malformed employee_id",
			MarkAttendanceRequest{EmployeeID: "abc", Date: "2025-06-02", Status: "present"},
			true,
		},
		{
			"missing date",
			MarkAttendanceRequest{EmployeeID: testEmployeeID, Status: "present"},
			true,
		},
		{
			"bad date format",
			MarkAttendanceRequest{EmployeeID: testEmployeeID, Date: "02-06-2025", Status: "present"},
			true,
		},
		{
			"missing status",
			MarkAttendanceRequest{EmployeeID: testEmployeeID, Date: "2025-06-02"},
			true,
		},
		{
			"malformed check-in",
			MarkAttendanceRequest{EmployeeID: testEmployeeID, Date: "2025-06-02", Status: "present", CheckIn: strPtr("08:30")},
			true,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()
			if c.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMarkAttendanceRequestParsing(t *testing.T) {
	req := MarkAttendanceRequest{
		EmployeeID: testEmployeeID,
		Date:       "2025-06-02",
		Status:     "present",
		CheckIn:    strPtr("2025-06-02T08:30:00Z"),
	}
	require.NoError(t, req.Validate())

	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), req.ParsedDate())

	checkIn := req.ParsedCheckIn()
	require.NotNil(t, checkIn)
	assert.Equal(t, time.Date(2025, 6, 2, 8, 30, 0, 0, time.UTC), checkIn.UTC())

	req.CheckIn = nil
	assert.Nil(t, req.ParsedCheckIn())
}

func TestUpdateAttendanceRequestValidate(t *testing.T) {
	assert.NoError(t, (&UpdateAttendanceRequest{}).Validate())
	assert.NoError(t, (&UpdateAttendanceRequest{CheckOut: strPtr("2025-06-02T17:00:00Z")}).Validate())
	assert.Error(t, (&UpdateAttendanceRequest{Status: strPtr("  ")}).Validate())
	assert.Error(t, (&UpdateAttendanceRequest{CheckOut: strPtr("five pm")}).Validate())
}
