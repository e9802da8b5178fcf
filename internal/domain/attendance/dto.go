package attendance

type MarkPresentRequest struct {
	EmployeeID string `json:"employeeId"`
	Username   string `json:"username"`
}

type Response struct {
	Date       string `json:"date"`
	EmployeeID string `json:"employeeId"`
	Status     string `json:"status"`
	Time       string `json:"time"`
	Approved   bool   `json:"approved"`
	Username   string `json:"username"`
	Name       string `json:"name"`
}

type ListResponse struct {
	Date    string     `json:"date"`
	Records []Response `json:"records"`
}
