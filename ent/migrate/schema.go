// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CredentialsColumns holds the columns for the "credentials" table.
	CredentialsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "access_token", Type: field.TypeString},
		{Name: "refresh_token", Type: field.TypeString, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CredentialsTable holds the schema information for the "credentials" table.
	CredentialsTable = &schema.Table{
		Name:       "credentials",
		Columns:    CredentialsColumns,
		PrimaryKey: []*schema.Column{CredentialsColumns[0]},
	}
	// PreferencesColumns holds the columns for the "preferences" table.
	PreferencesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeString},
	}
	// PreferencesTable holds the schema information for the "preferences" table.
	PreferencesTable = &schema.Table{
		Name:       "preferences",
		Columns:    PreferencesColumns,
		PrimaryKey: []*schema.Column{PreferencesColumns[0]},
	}
	// QuizSnapshotsColumns holds the columns for the "quiz_snapshots" table.
	QuizSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "quiz_key", Type: field.TypeString, Unique: true},
		{Name: "answers", Type: field.TypeJSON},
		{Name: "question_index", Type: field.TypeInt, Default: 0},
		{Name: "remaining_secs", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// QuizSnapshotsTable holds the schema information for the "quiz_snapshots" table.
	QuizSnapshotsTable = &schema.Table{
		Name:       "quiz_snapshots",
		Columns:    QuizSnapshotsColumns,
		PrimaryKey: []*schema.Column{QuizSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizsnapshot_updated_at",
				Unique:  false,
				Columns: []*schema.Column{QuizSnapshotsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CredentialsTable,
		PreferencesTable,
		QuizSnapshotsTable,
	}
)

func init() {
}
