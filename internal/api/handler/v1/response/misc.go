package response

type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

type HealthcheckResponse struct {
	Status string `json:"status"`
}
