// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/Adarsh-oo7/pscprep/ent/credential"
	"github.com/Adarsh-oo7/pscprep/ent/preference"
	"github.com/Adarsh-oo7/pscprep/ent/quizsnapshot"
	"github.com/Adarsh-oo7/pscprep/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	credentialFields := schema.Credential{}.Fields()
	_ = credentialFields
	// credentialDescAccessToken is the schema descriptor for access_token field.
	credentialDescAccessToken := credentialFields[0].Descriptor()
	// credential.AccessTokenValidator is a validator for the "access_token" field. It is called by the builders before save.
	credential.AccessTokenValidator = credentialDescAccessToken.Validators[0].(func(string) error)
	// credentialDescUpdatedAt is the schema descriptor for updated_at field.
	credentialDescUpdatedAt := credentialFields[2].Descriptor()
	// credential.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	credential.DefaultUpdatedAt = credentialDescUpdatedAt.Default.(func() time.Time)
	// credential.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	credential.UpdateDefaultUpdatedAt = credentialDescUpdatedAt.UpdateDefault.(func() time.Time)
	preferenceFields := schema.Preference{}.Fields()
	_ = preferenceFields
	// preferenceDescKey is the schema descriptor for key field.
	preferenceDescKey := preferenceFields[0].Descriptor()
	// preference.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	preference.KeyValidator = preferenceDescKey.Validators[0].(func(string) error)
	quizsnapshotFields := schema.QuizSnapshot{}.Fields()
	_ = quizsnapshotFields
	// quizsnapshotDescQuizKey is the schema descriptor for quiz_key field.
	quizsnapshotDescQuizKey := quizsnapshotFields[0].Descriptor()
	// quizsnapshot.QuizKeyValidator is a validator for the "quiz_key" field. It is called by the builders before save.
	quizsnapshot.QuizKeyValidator = quizsnapshotDescQuizKey.Validators[0].(func(string) error)
	// quizsnapshotDescQuestionIndex is the schema descriptor for question_index field.
	quizsnapshotDescQuestionIndex := quizsnapshotFields[2].Descriptor()
	// quizsnapshot.DefaultQuestionIndex holds the default value on creation for the question_index field.
	quizsnapshot.DefaultQuestionIndex = quizsnapshotDescQuestionIndex.Default.(int)
	// quizsnapshotDescRemainingSecs is the schema descriptor for remaining_secs field.
	quizsnapshotDescRemainingSecs := quizsnapshotFields[3].Descriptor()
	// quizsnapshot.DefaultRemainingSecs holds the default value on creation for the remaining_secs field.
	quizsnapshot.DefaultRemainingSecs = quizsnapshotDescRemainingSecs.Default.(int)
	// quizsnapshotDescUpdatedAt is the schema descriptor for updated_at field.
	quizsnapshotDescUpdatedAt := quizsnapshotFields[4].Descriptor()
	// quizsnapshot.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	quizsnapshot.DefaultUpdatedAt = quizsnapshotDescUpdatedAt.Default.(func() time.Time)
	// quizsnapshot.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	quizsnapshot.UpdateDefaultUpdatedAt = quizsnapshotDescUpdatedAt.UpdateDefault.(func() time.Time)
}
