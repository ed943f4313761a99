package request_models

type ValidateSessionRequest struct {
	SessionToken string `json:"session_token"`
}
