package restapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"sellerdesk/internal/core/domain/model/session"
	"sellerdesk/internal/core/ports"
)

const (
	loginFailed    = "Login failed"
	registerFailed = "Signup failed"
	logoutFailed   = "Logout failed"
)

// UserClient implements ports.Authenticator over /api/users.
type UserClient struct {
	client *Client
}

func NewUserClient(client *Client) *UserClient {
	return &UserClient{client: client}
}

type userPayload struct {
	ID    string `json:"_id"`
	AltID string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (p userPayload) toDomain() session.Operator {
	id := p.ID
	if id == "" {
		id = p.AltID
	}
	return session.Operator{ID: id, Name: p.Name, Email: p.Email, Role: p.Role}
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  userPayload `json:"user"`
}

type addressPayload struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

type registerPayload struct {
	Name     string         `json:"name"`
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Address  addressPayload `json:"address"`
}

// Login posts the credentials to /api/users/login and returns {token, user}.
func (c *UserClient) Login(ctx context.Context, credentials ports.Credentials) (string, session.Operator, error) {
	req, err := jsonRequest(http.MethodPost, "/api/users/login",
		loginPayload{Email: credentials.Email, Password: credentials.Password}, loginFailed)
	if err != nil {
		return "", session.Operator{}, err
	}

	body, err := c.client.do(ctx, req)
	if err != nil {
		return "", session.Operator{}, err
	}

	var resp loginResponse
	if err = json.Unmarshal(body, &resp); err != nil {
		return "", session.Operator{}, decodeError(loginFailed, err)
	}
	if strings.TrimSpace(resp.Token) == "" {
		return "", session.Operator{}, &APIError{StatusCode: http.StatusOK, Message: loginFailed}
	}
	return resp.Token, resp.User.toDomain(), nil
}

// Register posts a new account to /api/users/register. The response holds the
// created user, bare or under "user"; no token is issued.
func (c *UserClient) Register(ctx context.Context, registration ports.Registration) (session.Operator, error) {
	addr := registration.Address
	req, err := jsonRequest(http.MethodPost, "/api/users/register", registerPayload{
		Name:     registration.Name,
		Email:    registration.Email,
		Password: registration.Password,
		Address: addressPayload{
			Street:     addr.Street,
			City:       addr.City,
			State:      addr.State,
			PostalCode: addr.PostalCode,
			Country:    addr.Country,
		},
	}, registerFailed)
	if err != nil {
		return session.Operator{}, err
	}

	body, err := c.client.do(ctx, req)
	if err != nil {
		return session.Operator{}, err
	}

	var user userPayload
	if err = json.Unmarshal(unwrapObject(body, "user"), &user); err != nil {
		return session.Operator{}, decodeError(registerFailed, err)
	}
	return user.toDomain(), nil
}

// Logout posts to /api/users/logout with the token carried by ctx.
func (c *UserClient) Logout(ctx context.Context) error {
	_, err := c.client.do(ctx, request{method: http.MethodPost, path: "/api/users/logout", fallback: logoutFailed})
	return err
}
