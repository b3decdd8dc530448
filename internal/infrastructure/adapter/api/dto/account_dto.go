package dto

// AccountResponse represents one balance in the ops API
type AccountResponse struct {
	UserID string `json:"userId"`
	Points int64  `json:"points"`
	Exists bool   `json:"exists"`
}

// AccountListResponse represents the API response for all balances
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
	Count    int               `json:"count"`
}
