package store

import (
	"context"
	"fmt"
	"time"

	"github.com/Adarsh-oo7/pscprep/ent"
	"github.com/Adarsh-oo7/pscprep/ent/quizsnapshot"
)

// DefaultSnapshotMaxAge is the freshness window for resuming an
// in-progress attempt. Older snapshots are treated as abandoned.
const DefaultSnapshotMaxAge = 2 * time.Hour

// quizSnapshotRepo implements QuizSnapshotRepo using the ent client.
type quizSnapshotRepo struct {
	client *ent.Client
}

func (r *quizSnapshotRepo) Save(ctx context.Context, p *QuizProgress) error {
	err := r.client.QuizSnapshot.Create().
		SetQuizKey(p.QuizKey).
		SetAnswers(p.Answers).
		SetQuestionIndex(p.QuestionIndex).
		SetRemainingSecs(p.RemainingSecs).
		OnConflictColumns(quizsnapshot.FieldQuizKey).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save quiz snapshot: %w", err)
	}
	return nil
}

func (r *quizSnapshotRepo) Load(ctx context.Context, quizKey string, maxAge time.Duration) (*QuizProgress, error) {
	s, err := r.client.QuizSnapshot.Query().
		Where(quizsnapshot.QuizKey(quizKey)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load quiz snapshot: %w", err)
	}

	if time.Since(s.UpdatedAt) > maxAge {
		// Abandoned attempt. Drop it rather than resuming hours later.
		_, _ = r.client.QuizSnapshot.Delete().
			Where(quizsnapshot.QuizKey(quizKey)).
			Exec(ctx)
		return nil, nil
	}

	return &QuizProgress{
		QuizKey:       s.QuizKey,
		Answers:       s.Answers,
		QuestionIndex: s.QuestionIndex,
		RemainingSecs: s.RemainingSecs,
		UpdatedAt:     s.UpdatedAt,
	}, nil
}

func (r *quizSnapshotRepo) Delete(ctx context.Context, quizKey string) error {
	_, err := r.client.QuizSnapshot.Delete().
		Where(quizsnapshot.QuizKey(quizKey)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete quiz snapshot: %w", err)
	}
	return nil
}
