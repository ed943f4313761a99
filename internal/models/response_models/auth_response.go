package response_models

type LoginURLResponse struct {
	AuthURL string `json:"auth_url"`
}

type SessionResponse struct {
	SessionToken string       `json:"session_token"`
	User         UserResponse `json:"user"`
}

type ValidateSessionResponse struct {
	Valid bool          `json:"valid"`
	User  *UserResponse `json:"user,omitempty"`
}
