package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizSnapshot preserves an in-progress attempt so it can be resumed
// if the app is closed mid-quiz. Snapshots older than the freshness
// window are discarded on load.
type QuizSnapshot struct {
	ent.Schema
}

func (QuizSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("quiz_key").
			NotEmpty().
			Unique().
			Comment("Exam or topic identifier the attempt belongs to"),
		field.JSON("answers", map[string]string{}).
			Comment("Sparse question-id to option-key map"),
		field.Int("question_index").
			Default(0).
			Comment("Question the learner was on"),
		field.Int("remaining_secs").
			Default(0).
			Comment("Countdown value at save time"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (QuizSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("updated_at"),
	}
}
