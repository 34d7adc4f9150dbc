package leave

import (
	"mime/multipart"

	"github.com/careeradvance/jobboard-gateway/internal/pkg/validator"
)

type CreateLeaveRequestRequest struct {
	EmployeeID int    `json:"employee_id"`
	LeaveType  string `json:"leave_type"`
	StartDate  string `json:"apply_start_date"`
	EndDate    string `json:"apply_end_date"`
	Reason     string `json:"reason"`

	// Optional supporting document, taken from the multipart form.
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is required",
		})
	}
	if len(r.LeaveType) > 50 {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must not exceed 50 characters",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "apply_start_date",
			Message: "apply_start_date must be a valid date (YYYY-MM-DD)",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "apply_end_date",
			Message: "apply_end_date must be a valid date (YYYY-MM-DD)",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "apply_end_date",
			Message: "apply_end_date must not be before apply_start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateLeaveRequestRequest is a partial update; only non-nil fields are sent
// upstream.
type UpdateLeaveRequestRequest struct {
	ID        int     `json:"-"`
	LeaveType *string `json:"leave_type,omitempty"`
	StartDate *string `json:"apply_start_date,omitempty"`
	EndDate   *string `json:"apply_end_date,omitempty"`
	Reason    *string `json:"reason,omitempty"`
}

func (r *UpdateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.LeaveType != nil {
		if validator.IsEmpty(*r.LeaveType) {
			errs = append(errs, validator.ValidationError{
				Field:   "leave_type",
				Message: "leave_type must not be empty",
			})
		}
		if len(*r.LeaveType) > 50 {
			errs = append(errs, validator.ValidationError{
				Field:   "leave_type",
				Message: "leave_type must not exceed 50 characters",
			})
		}
	}

	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "apply_start_date",
				Message: "apply_start_date must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "apply_end_date",
				Message: "apply_end_date must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// LeaveDecisionRequest carries the approved window submitted with an approve
// or a reject call. Both calls share the same shape upstream.
type LeaveDecisionRequest struct {
	ID                int    `json:"id"`
	ApprovedStartDate string `json:"approved_start_date"`
	ApprovedEndDate   string `json:"approved_end_date"`
	NumApprovedDays   int    `json:"num_approved_days"`
}

func (r *LeaveDecisionRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	start, startOK := validator.IsValidDate(r.ApprovedStartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "approved_start_date",
			Message: "approved_start_date must be a valid date (YYYY-MM-DD)",
		})
	}

	end, endOK := validator.IsValidDate(r.ApprovedEndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "approved_end_date",
			Message: "approved_end_date must be a valid date (YYYY-MM-DD)",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "approved_end_date",
			Message: "approved_end_date must not be before approved_start_date",
		})
	}

	if r.NumApprovedDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "num_approved_days",
			Message: "num_approved_days must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateLeaveTypeRequest struct {
	CompanyID int    `json:"company_id"`
	Name      string `json:"leave_type"`
	LeaveDays int    `json:"leave_days"`
}

func (r *CreateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is required",
		})
	}
	if len(r.Name) > 50 {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must not exceed 50 characters",
		})
	}

	if r.LeaveDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_days",
			Message: "leave_days must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateLeaveTypeRequest struct {
	ID        int     `json:"-"`
	Name      *string `json:"leave_type,omitempty"`
	LeaveDays *int    `json:"leave_days,omitempty"`
}

func (r *UpdateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "leave_type",
				Message: "leave_type must not be empty",
			})
		}
		if len(*r.Name) > 50 {
			errs = append(errs, validator.ValidationError{
				Field:   "leave_type",
				Message: "leave_type must not exceed 50 characters",
			})
		}
	}

	if r.LeaveDays != nil && *r.LeaveDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_days",
			Message: "leave_days must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
