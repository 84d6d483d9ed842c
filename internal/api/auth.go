package api

import "context"

// LoginResponse carries the token pair issued on login.
type LoginResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Login exchanges credentials for a token pair.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	body := map[string]string{
		"username": username,
		"password": password,
	}
	var out LoginResponse
	if err := c.post(ctx, "/api/auth/login/", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me fetches the profile of the authenticated user.
func (c *Client) Me(ctx context.Context) (*Profile, error) {
	var out Profile
	if err := c.get(ctx, "/api/users/me/", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
