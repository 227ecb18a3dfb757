package api

import "context"

// LoginRequest is the body of POST /auth/login/.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /auth/register/.
type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Login authenticates with email and password.
// The session manager owns applying the returned tokens to the client.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var auth AuthResponse
	if err := c.post(ctx, "/auth/login/", LoginRequest{Email: email, Password: password}, &auth); err != nil {
		return nil, err
	}
	return &auth, nil
}

// Register creates a new account. The backend logs the new user in and
// returns the same shape as Login.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var auth AuthResponse
	if err := c.post(ctx, "/auth/register/", req, &auth); err != nil {
		return nil, err
	}
	return &auth, nil
}

// GoogleLogin exchanges a Google OAuth access token for backend session tokens.
func (c *Client) GoogleLogin(ctx context.Context, oauthToken string) (*AuthResponse, error) {
	body := map[string]string{"token": oauthToken}

	var auth AuthResponse
	if err := c.post(ctx, "/auth/google/", body, &auth); err != nil {
		return nil, err
	}
	return &auth, nil
}

// Logout asks the server to invalidate the refresh token.
func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	body := map[string]string{"refresh": refreshToken}
	return c.post(ctx, "/auth/logout/", body, nil)
}

// Profile retrieves the currently authenticated user.
func (c *Client) Profile(ctx context.Context) (*User, error) {
	var user User
	if err := c.get(ctx, "/auth/profile/", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
