package payroll

type PayrollEntryResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	StoreID      string  `json:"store_id"`
	StoreName    *string `json:"store_name,omitempty"`
	Year         int     `json:"year"`
	Month        int     `json:"month"`
	BaseSalary   string  `json:"base_salary"`
	Allowances   string  `json:"allowances"`
	Deductions   string  `json:"deductions"`
	NetSalary    string  `json:"net_salary"`
}

type StoreSummaryResponse struct {
	StoreID       string `json:"store_id"`
	StoreName     string `json:"store_name"`
	Year          int    `json:"year"`
	Month         int    `json:"month"`
	EmployeeCount int64  `json:"employee_count"`
	TotalNet      string `json:"total_net"`
}

// NewPayrollEntryResponse maps the entity to its API shape.
func NewPayrollEntryResponse(e PayrollEntry) PayrollEntryResponse {
	return PayrollEntryResponse{
		ID:           e.ID,
		EmployeeID:   e.EmployeeID,
		EmployeeName: e.EmployeeName,
		StoreID:      e.StoreID,
		StoreName:    e.StoreName,
		Year:         e.Year,
		Month:        e.Month,
		BaseSalary:   e.BaseSalary.StringFixed(2),
		Allowances:   e.Allowances.StringFixed(2),
		Deductions:   e.Deductions.StringFixed(2),
		NetSalary:    e.NetSalary.StringFixed(2),
	}
}

// NewStoreSummaryResponse maps the aggregate to its API shape.
func NewStoreSummaryResponse(s StoreSummary) StoreSummaryResponse {
	return StoreSummaryResponse{
		StoreID:       s.StoreID,
		StoreName:     s.StoreName,
		Year:          s.Year,
		Month:         s.Month,
		EmployeeCount: s.EmployeeCount,
		TotalNet:      s.TotalNet.StringFixed(2),
	}
}
