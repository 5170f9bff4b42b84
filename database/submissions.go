package database

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/kuest/kuestionnaire/model"
)

// SubmissionSink adapts the database to the engine's submission sink.
// Saving happens after the engine has already moved on: an error here is
// logged upstream and the respondent still sees the completion screen.
type SubmissionSink struct {
	DB *sql.DB
}

func (s SubmissionSink) SaveSubmission(sub model.Submission) error {
	return SaveSubmission(context.Background(), s.DB, sub)
}

func SaveSubmission(ctx context.Context, db *sql.DB, sub model.Submission) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO submission (id, form_id, time) VALUES (?, ?, ?)`,
		sub.ID, sub.FormID, sub.Timestamp,
	)
	if err != nil {
		return errors.Wrap(err, "insert submission")
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO submission_answer (submission_id, question_id, value)
		VALUES (?, ?, ?)`)
	if err != nil {
		return errors.Wrap(err, "prepare answer insert")
	}
	defer stmt.Close()

	for questionID, value := range sub.Answers {
		encoded, err := json.Marshal(value)
		if err != nil {
			return errors.Wrapf(err, "encode answer for %s", questionID)
		}
		if _, err := stmt.ExecContext(ctx, sub.ID, questionID, string(encoded)); err != nil {
			return errors.Wrapf(err, "insert answer for %s", questionID)
		}
	}

	return errors.Wrap(tx.Commit(), "commit")
}

// ListSubmissions returns a form's submissions, most recent first. Answer
// values come back in their JSON-decoded shapes: strings, []any lists,
// float64 ratings, {date,time} maps.
func ListSubmissions(ctx context.Context, db *sql.DB, formID string) ([]model.Submission, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT s.id, s.time, a.question_id, a.value
		FROM submission s
		LEFT OUTER JOIN submission_answer a ON (s.id = a.submission_id)
		WHERE s.form_id = ?
		ORDER BY s.time DESC, s.id`, formID,
	)
	if err != nil {
		return nil, errors.Wrap(err, "list submissions")
	}
	defer rows.Close()

	subs := []model.Submission{}
	byID := map[string]int{}
	for rows.Next() {
		var id, timestamp string
		var questionID, value sql.NullString
		if err := rows.Scan(&id, &timestamp, &questionID, &value); err != nil {
			return nil, errors.Wrap(err, "scan submission")
		}

		idx, seen := byID[id]
		if !seen {
			idx = len(subs)
			byID[id] = idx
			subs = append(subs, model.Submission{
				ID:        id,
				FormID:    formID,
				Timestamp: timestamp,
				Answers:   map[string]any{},
			})
		}

		if !questionID.Valid {
			continue // submission without answers
		}
		var decoded any
		if value.Valid && value.String != "" {
			if err := json.Unmarshal([]byte(value.String), &decoded); err != nil {
				return nil, errors.Wrapf(err, "decode answer for %s", questionID.String)
			}
		}
		subs[idx].Answers[questionID.String] = decoded
	}
	return subs, errors.Wrap(rows.Err(), "iterate submissions")
}
