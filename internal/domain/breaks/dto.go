package breaks

type StartRequest struct {
	EmployeeID string `json:"employeeId"`
	Type       string `json:"type"`
}

type Response struct {
	Date       string  `json:"date"`
	EmployeeID string  `json:"employeeId"`
	Index      int     `json:"index"`
	Type       string  `json:"type"`
	Start      string  `json:"start"`
	End        *string `json:"end"`
	Approved   bool    `json:"approved"`
}

type ListResponse struct {
	Date    string     `json:"date"`
	Entries []Response `json:"entries"`
}
