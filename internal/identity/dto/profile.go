package dto

// UpdateProfileInput carries a password change. Username is optional: empty
// means the acting user's own account, anything else is an on-behalf-of
// update that the authorization gate must permit.
type UpdateProfileInput struct {
	Username string `json:"username,omitempty"`
	Password string `json:"password"`
}

type ProfileOutput struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Message  string `json:"message"`
}
