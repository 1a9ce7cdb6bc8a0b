package models

// TokenResponse is the JSON body returned by the register and login
// endpoints. TokenType is always "bearer".
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// MessageResponse is a minimal JSON envelope for endpoints that have no
// meaningful payload (health check, deletions).
type MessageResponse struct {
	Message string `json:"message"`
}
