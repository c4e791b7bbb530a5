package response

type BranchDayCount struct {
	BranchID   string `json:"branch_id"`
	BranchName string `json:"branch_name"`
	Day        string `json:"day"`
	Washes     int64  `json:"washes"`
}

type PaymentTotalsResponse struct {
	Completed      int64   `json:"completed"`
	Failed         int64   `json:"failed"`
	Pending        int64   `json:"pending"`
	CompletedTotal float64 `json:"completed_total"`
}

// DashboardResponse is the admin operational/financial report.
type DashboardResponse struct {
	WashesPerBranch []BranchDayCount      `json:"washes_per_branch"`
	Payments        PaymentTotalsResponse `json:"payments"`
}
