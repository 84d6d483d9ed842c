package store

import (
	"context"
	"fmt"

	"github.com/Adarsh-oo7/pscprep/ent"
	"github.com/Adarsh-oo7/pscprep/ent/preference"
)

// preferenceRepo implements PreferenceRepo using the ent client.
type preferenceRepo struct {
	client *ent.Client
}

func (r *preferenceRepo) Get(ctx context.Context, key string) (string, error) {
	p, err := r.client.Preference.Query().
		Where(preference.Key(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("get preference %q: %w", key, err)
	}
	return p.Value, nil
}

func (r *preferenceRepo) Set(ctx context.Context, key, value string) error {
	err := r.client.Preference.Create().
		SetKey(key).
		SetValue(value).
		OnConflictColumns(preference.FieldKey).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("set preference %q: %w", key, err)
	}
	return nil
}
