package identity

// AuthRequest carries the credentials for registering or signing in.
type AuthRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the identity handed to a player, with a token when one was issued.
type AuthResponse struct {
	PlayerID string `json:"player_id"`
	Username string `json:"username,omitempty"`
	Token    string `json:"token,omitempty"`
}
