package employment

// EmployeeContext is the employment identity the upstream leave endpoints
// operate on. The client-visible identity is a job seeker; a seeker maps to
// at most one (employee, company) pair per company.
type EmployeeContext struct {
	EmployeeID int `json:"employee_id"`
	CompanyID  int `json:"company_id"`
}
