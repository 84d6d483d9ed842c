package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Credential holds the stored token pair for the signed-in user.
// At most one row exists; login replaces it and logout deletes it.
type Credential struct {
	ent.Schema
}

func (Credential) Fields() []ent.Field {
	return []ent.Field{
		field.String("access_token").
			NotEmpty().
			Sensitive(),
		field.String("refresh_token").
			Optional().
			Sensitive(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
