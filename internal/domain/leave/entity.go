package leave

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "rejected"
)

// Date is a calendar date without a time component. The upstream backend
// speaks "2006-01-02" on the wire, sometimes with an empty string for unset.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(d.Format(dateLayout))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if s == "" || s == "0000-00-00" {
		*d = Date{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return err
	}
	*d = Date{t}
	return nil
}

// Timestamp tolerates the two clock formats upstream emits: RFC 3339 from
// the newer endpoints and "2006-01-02 15:04:05" from the MySQL-backed ones.
// Empty strings and MySQL zero values decode as unset.
type Timestamp struct {
	time.Time
}

const mysqlTimeLayout = "2006-01-02 15:04:05"

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(t.Format(time.RFC3339))
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if s == "" || s == "0000-00-00 00:00:00" || s == "0000-00-00" {
		*t = Timestamp{}
		return nil
	}
	for _, layout := range []string{time.RFC3339, mysqlTimeLayout, dateLayout} {
		if parsed, err := time.Parse(layout, s); err == nil {
			*t = Timestamp{parsed}
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", s)
}

// InclusiveDays returns the number of calendar days covered by [start, end],
// counting both endpoints. A single-day range yields 1.
func InclusiveDays(start, end Date) int {
	return int(end.Sub(start.Time).Hours()/24) + 1
}

// LeaveRequest entity, owned by the upstream backend. The ID and timestamps
// are assigned there and never set by this service.
type LeaveRequest struct {
	ID         int `json:"id"`
	EmployeeID int `json:"employee_id"`
	CompanyID  int `json:"company_id"`

	ApplyStartDate Date `json:"apply_start_date"`
	ApplyEndDate   Date `json:"apply_end_date"`

	ApprovedStartDate *Date `json:"approved_start_date,omitempty"`
	ApprovedEndDate   *Date `json:"approved_end_date,omitempty"`
	NumApprovedDays   *int  `json:"num_approved_days,omitempty"`

	LeaveType string             `json:"leave_type"`
	Status    LeaveRequestStatus `json:"status"`
	Reason    string             `json:"reason"`

	ApplyHardCopy *string `json:"apply_hard_copy,omitempty"`

	CreatedAt Timestamp `json:"created_at"`
	UpdatedAt Timestamp `json:"updated_at"`
}

// LeaveType entity, scoped to one company. Requests reference it by name,
// not by foreign key.
type LeaveType struct {
	ID        int    `json:"id"`
	CompanyID int    `json:"company_id"`
	Name      string `json:"leave_type"`
	LeaveDays int    `json:"leave_days"`

	CreatedAt Timestamp `json:"created_at"`
	UpdatedAt Timestamp `json:"updated_at"`
}
