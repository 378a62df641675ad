package httptransport

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type ConnectRequest struct {
	AccountID string `json:"account_id"`
}

type SessionDTO struct {
	Token     string  `json:"token"`
	AccountID string  `json:"account_id"`
	Balance   float64 `json:"balance"`
	ExpiresAt string  `json:"expires_at"`
}

type ConnectResponse struct {
	Status string     `json:"status"`
	Data   SessionDTO `json:"data"`
}
