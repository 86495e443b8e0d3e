package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"

	"toromarket/pkg/errors"
)

// Identity carries what the verifier yields for a valid bearer credential.
type Identity struct {
	UID   string
	Email string
}

type AuthClient struct {
	client *auth.Client
}

func NewAuthClient(client *auth.Client) *AuthClient {
	return &AuthClient{
		client: client,
	}
}

// VerifyToken validates a Firebase ID token and returns the stable uid and
// the email claim. An email-less token is rejected: local accounts are
// keyed by email.
func (a *AuthClient) VerifyToken(ctx context.Context, idToken string) (*Identity, error) {
	token, err := a.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Unauthorized("Invalid or expired token", err)
	}

	email, _ := token.Claims["email"].(string)
	if email == "" {
		return nil, errors.Unauthorized("Email not found in token", nil)
	}

	return &Identity{UID: token.UID, Email: email}, nil
}

func (a *AuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)

	user, err := a.client.CreateUser(ctx, params)
	if err != nil {
		return "", err
	}

	return user.UID, nil
}

// CustomToken mints a token for the dev-token flow.
func (a *AuthClient) CustomToken(ctx context.Context, uid string) (string, error) {
	return a.client.CustomToken(ctx, uid)
}
