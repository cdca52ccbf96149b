package models

// LoginRequest is the credential payload for the login endpoint.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LogoutRequest closes the session identified by its token.
type LogoutRequest struct {
	Token string `json:"token"`
}

// PredictRequest is what the presentation layer supplies for one
// forecast: the acting user, a location from the fixed list and a
// target timestamp with minute granularity.
type PredictRequest struct {
	UserID   uint   `json:"user_id"`
	Location string `json:"location"`
	Target   string `json:"target"` // "2006-01-02 15:04" or RFC3339
}
