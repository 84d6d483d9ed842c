package store

import (
	"context"
	"fmt"

	"github.com/Adarsh-oo7/pscprep/ent"
)

// credentialRepo implements CredentialRepo using the ent client.
type credentialRepo struct {
	client *ent.Client
}

func (r *credentialRepo) Save(ctx context.Context, t Tokens) error {
	// Replace-the-row semantics: only one signed-in user at a time.
	if _, err := r.client.Credential.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear old credentials: %w", err)
	}

	_, err := r.client.Credential.Create().
		SetAccessToken(t.Access).
		SetRefreshToken(t.Refresh).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}
	return nil
}

func (r *credentialRepo) Load(ctx context.Context) (*Tokens, error) {
	c, err := r.client.Credential.Query().First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load credentials: %w", err)
	}
	return &Tokens{
		Access:  c.AccessToken,
		Refresh: c.RefreshToken,
	}, nil
}

func (r *credentialRepo) Clear(ctx context.Context) error {
	if _, err := r.client.Credential.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}
	return nil
}
