package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/pkg/errors"

	"github.com/kuest/kuestionnaire/model"
)

var ErrNotFound = errors.New("not found")

// questionSettings bundles the type-specific attributes into one JSON
// column instead of a dozen mostly-null ones.
type questionSettings struct {
	Description           string `json:"description,omitempty"`
	Placeholder           string `json:"placeholder,omitempty"`
	InputType             string `json:"inputType,omitempty"`
	MaxRating             int    `json:"maxRating,omitempty"`
	RatingIcon            string `json:"ratingIcon,omitempty"`
	RatingMinLabel        string `json:"ratingMinLabel,omitempty"`
	RatingMaxLabel        string `json:"ratingMaxLabel,omitempty"`
	IncludeTime           bool   `json:"includeTime,omitempty"`
	RandomizeOptions      bool   `json:"randomizeOptions,omitempty"`
	AcceptedFileTypes     string `json:"acceptedFileTypes,omitempty"`
	MaxFileSizeMB         int    `json:"maxFileSize,omitempty"`
	SignatureRequireDraw  bool   `json:"signatureRequireDraw,omitempty"`
	SignatureInstructions string `json:"signatureInstructions,omitempty"`
}

func settingsOf(q model.Question) questionSettings {
	return questionSettings{
		Description:           q.Description,
		Placeholder:           q.Placeholder,
		InputType:             q.InputType,
		MaxRating:             q.MaxRating,
		RatingIcon:            q.RatingIcon,
		RatingMinLabel:        q.RatingMinLabel,
		RatingMaxLabel:        q.RatingMaxLabel,
		IncludeTime:           q.IncludeTime,
		RandomizeOptions:      q.RandomizeOptions,
		AcceptedFileTypes:     q.AcceptedFileTypes,
		MaxFileSizeMB:         q.MaxFileSizeMB,
		SignatureRequireDraw:  q.SignatureRequireDraw,
		SignatureInstructions: q.SignatureInstructions,
	}
}

func applySettings(q *model.Question, s questionSettings) {
	q.Description = s.Description
	q.Placeholder = s.Placeholder
	q.InputType = s.InputType
	q.MaxRating = s.MaxRating
	q.RatingIcon = s.RatingIcon
	q.RatingMinLabel = s.RatingMinLabel
	q.RatingMaxLabel = s.RatingMaxLabel
	q.IncludeTime = s.IncludeTime
	q.RandomizeOptions = s.RandomizeOptions
	q.AcceptedFileTypes = s.AcceptedFileTypes
	q.MaxFileSizeMB = s.MaxFileSizeMB
	q.SignatureRequireDraw = s.SignatureRequireDraw
	q.SignatureInstructions = s.SignatureInstructions
}

func SaveForm(ctx context.Context, db *sql.DB, form model.Form) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO form (id, title, description, theme, thank_you_title, thank_you_message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		form.ID, form.Title, form.Description, form.Theme,
		form.ThankYouTitle, form.ThankYouMessage, time.Now().UTC(),
	)
	if err != nil {
		return errors.Wrap(err, "insert form")
	}

	if err := insertQuestions(ctx, tx, form); err != nil {
		return err
	}
	return errors.Wrap(tx.Commit(), "commit")
}

func UpdateForm(ctx context.Context, db *sql.DB, form model.Form) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE form
		SET title = ?, description = ?, theme = ?, thank_you_title = ?, thank_you_message = ?
		WHERE id = ?`,
		form.Title, form.Description, form.Theme,
		form.ThankYouTitle, form.ThankYouMessage, form.ID,
	)
	if err != nil {
		return errors.Wrap(err, "update form")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	// questions are replaced wholesale: order is significant and partial
	// diffs buy nothing at this scale
	_, err = tx.ExecContext(ctx, `DELETE FROM form_question WHERE form_id = ?`, form.ID)
	if err != nil {
		return errors.Wrap(err, "delete old questions")
	}
	if err := insertQuestions(ctx, tx, form); err != nil {
		return err
	}
	return errors.Wrap(tx.Commit(), "commit")
}

func insertQuestions(ctx context.Context, tx *sql.Tx, form model.Form) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO form_question (id, form_id, position, type, label, required, options, logic, settings)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return errors.Wrap(err, "prepare question insert")
	}
	defer stmt.Close()

	for i, q := range form.Questions {
		options, err := json.Marshal(q.Options)
		if err != nil {
			return errors.Wrapf(err, "encode options of %s", q.ID)
		}
		logic, err := json.Marshal(q.Logic)
		if err != nil {
			return errors.Wrapf(err, "encode logic of %s", q.ID)
		}
		settings, err := json.Marshal(settingsOf(q))
		if err != nil {
			return errors.Wrapf(err, "encode settings of %s", q.ID)
		}

		_, err = stmt.ExecContext(ctx, q.ID, form.ID, i, string(q.Type), q.Label, q.Required,
			string(options), string(logic), string(settings))
		if err != nil {
			return errors.Wrapf(err, "insert question %s", q.ID)
		}
	}
	return nil
}

func GetForm(ctx context.Context, db *sql.DB, id string) (model.Form, error) {
	form := model.Form{ID: id}
	err := db.QueryRowContext(ctx, `
		SELECT title, description, theme, thank_you_title, thank_you_message
		FROM form
		WHERE id = ?`, id,
	).Scan(&form.Title, &form.Description, &form.Theme, &form.ThankYouTitle, &form.ThankYouMessage)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Form{}, ErrNotFound
	}
	if err != nil {
		return model.Form{}, errors.Wrap(err, "get form")
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, type, label, required, options, logic, settings
		FROM form_question
		WHERE form_id = ?
		ORDER BY position`, id,
	)
	if err != nil {
		return model.Form{}, errors.Wrap(err, "get questions")
	}
	defer rows.Close()

	for rows.Next() {
		var q model.Question
		var qtype, options, logic, settings string
		if err := rows.Scan(&q.ID, &qtype, &q.Label, &q.Required, &options, &logic, &settings); err != nil {
			return model.Form{}, errors.Wrap(err, "scan question")
		}
		q.Type = model.QuestionType(qtype)

		if options != "" {
			if err := json.Unmarshal([]byte(options), &q.Options); err != nil {
				return model.Form{}, errors.Wrapf(err, "decode options of %s", q.ID)
			}
		}
		if logic != "" {
			if err := json.Unmarshal([]byte(logic), &q.Logic); err != nil {
				return model.Form{}, errors.Wrapf(err, "decode logic of %s", q.ID)
			}
		}
		if settings != "" {
			var s questionSettings
			if err := json.Unmarshal([]byte(settings), &s); err != nil {
				return model.Form{}, errors.Wrapf(err, "decode settings of %s", q.ID)
			}
			applySettings(&q, s)
		}

		form.Questions = append(form.Questions, q)
	}
	return form, errors.Wrap(rows.Err(), "iterate questions")
}

// ListForms returns form metadata only, most recent first. Questions are
// loaded per form with GetForm.
func ListForms(ctx context.Context, db *sql.DB) ([]model.Form, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, title, description, theme
		FROM form
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, errors.Wrap(err, "list forms")
	}
	defer rows.Close()

	forms := []model.Form{}
	for rows.Next() {
		var f model.Form
		if err := rows.Scan(&f.ID, &f.Title, &f.Description, &f.Theme); err != nil {
			return nil, errors.Wrap(err, "scan form")
		}
		forms = append(forms, f)
	}
	return forms, errors.Wrap(rows.Err(), "iterate forms")
}

func DeleteForm(ctx context.Context, db *sql.DB, id string) error {
	res, err := db.ExecContext(ctx, `DELETE FROM form WHERE id = ?`, id)
	if err != nil {
		return errors.Wrap(err, "delete form")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
