package coaching

type AcknowledgeRequest struct {
	Signature string `json:"signature"`
	Comment   string `json:"comment"`
}

type ListLogsResponse struct {
	TotalCount int   `json:"totalCount"`
	Logs       []Log `json:"logs"`
}

type ListPendingResponse struct {
	TotalCount int       `json:"totalCount"`
	Pending    []Pending `json:"pending"`
}
