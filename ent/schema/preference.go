package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Preference is an opaque key-value pair (theme, quiz configuration).
type Preference struct {
	ent.Schema
}

func (Preference) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			NotEmpty().
			Unique(),
		field.String("value"),
	}
}
