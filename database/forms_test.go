package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/kuest/kuestionnaire/config"
	"github.com/kuest/kuestionnaire/model"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(config.Config{DBUrl: filepath.Join(t.TempDir(), "test.sqlite")})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleForm() model.Form {
	return model.Form{
		ID:              "form-1",
		Title:           "Off-World Colonization App",
		Description:     "Application form for the terraforming initiative",
		Theme:           "nebula",
		ThankYouTitle:   "Transmission complete",
		ThankYouMessage: "Data stored.",
		Questions: []model.Question{
			{ID: "q0", Type: model.ShortText, Label: "Candidate Name", Required: true, Placeholder: "Name", InputType: "text"},
			{ID: "q1", Type: model.Dropdown, Label: "Sector of Origin", Required: true,
				Options: []model.Option{{ID: "o1", Label: "Earth"}, {ID: "o2", Label: "Luna"}, {ID: "o3", Label: "Belt"}},
				Logic:   []model.LogicRule{{ID: "r1", Condition: model.Equals, Value: "belt", JumpToID: "q3"}}},
			{ID: "q2", Type: model.Section, Label: "Medical"},
			{ID: "q3", Type: model.Rating, Label: "G-Force Tolerance", MaxRating: 5, RatingIcon: "zap"},
			{ID: "q4", Type: model.Date, Label: "Departure", IncludeTime: true},
		},
	}
}

func TestFormRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	form := sampleForm()
	if err := SaveForm(ctx, db, form); err != nil {
		t.Fatalf("save form: %v", err)
	}

	got, err := GetForm(ctx, db, form.ID)
	if err != nil {
		t.Fatalf("get form: %v", err)
	}

	if got.Title != form.Title || got.ThankYouMessage != form.ThankYouMessage {
		t.Errorf("form metadata mismatch: %+v", got)
	}
	if len(got.Questions) != len(form.Questions) {
		t.Fatalf("question count = %d, want %d", len(got.Questions), len(form.Questions))
	}
	for i, q := range got.Questions {
		if q.ID != form.Questions[i].ID {
			t.Errorf("question order broken at %d: %s", i, q.ID)
		}
	}

	origin := got.Questions[1]
	if len(origin.Options) != 3 || origin.Options[2].Label != "Belt" {
		t.Errorf("options mismatch: %+v", origin.Options)
	}
	if len(origin.Logic) != 1 || origin.Logic[0].JumpToID != "q3" {
		t.Errorf("logic mismatch: %+v", origin.Logic)
	}

	tolerance := got.Questions[3]
	if tolerance.MaxRating != 5 || tolerance.RatingIcon != "zap" {
		t.Errorf("rating settings mismatch: %+v", tolerance)
	}
	if !got.Questions[4].IncludeTime {
		t.Error("includeTime setting lost")
	}
}

func TestGetFormNotFound(t *testing.T) {
	db := openTestDB(t)

	if _, err := GetForm(context.Background(), db, "missing"); err != ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdateFormReplacesQuestions(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	form := sampleForm()
	if err := SaveForm(ctx, db, form); err != nil {
		t.Fatalf("save form: %v", err)
	}

	form.Title = "Renamed"
	form.Questions = form.Questions[:2]
	if err := UpdateForm(ctx, db, form); err != nil {
		t.Fatalf("update form: %v", err)
	}

	got, err := GetForm(ctx, db, form.ID)
	if err != nil {
		t.Fatalf("get form: %v", err)
	}
	if got.Title != "Renamed" || len(got.Questions) != 2 {
		t.Errorf("update not applied: %q, %d questions", got.Title, len(got.Questions))
	}

	if err := UpdateForm(ctx, db, model.Form{ID: "missing"}); err != ErrNotFound {
		t.Errorf("update missing form err = %v, want ErrNotFound", err)
	}
}

func TestDeleteFormCascades(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	form := sampleForm()
	if err := SaveForm(ctx, db, form); err != nil {
		t.Fatalf("save form: %v", err)
	}
	if err := DeleteForm(ctx, db, form.ID); err != nil {
		t.Fatalf("delete form: %v", err)
	}
	if _, err := GetForm(ctx, db, form.ID); err != ErrNotFound {
		t.Errorf("form survived delete: %v", err)
	}
	if err := DeleteForm(ctx, db, form.ID); err != ErrNotFound {
		t.Errorf("second delete err = %v, want ErrNotFound", err)
	}
}

func TestSubmissionRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	form := sampleForm()
	if err := SaveForm(ctx, db, form); err != nil {
		t.Fatalf("save form: %v", err)
	}

	sub := model.Submission{
		ID:        "sub-1",
		FormID:    form.ID,
		Timestamp: "2024-03-01T10:00:00Z",
		Answers: map[string]any{
			"q0": "Ada",
			"q1": "Belt",
			"q3": 4,
			"q4": model.DateValue{Date: "2050-06-01", Time: "08:00"},
		},
	}
	if err := (SubmissionSink{DB: db}).SaveSubmission(sub); err != nil {
		t.Fatalf("save submission: %v", err)
	}

	subs, err := ListSubmissions(ctx, db, form.ID)
	if err != nil {
		t.Fatalf("list submissions: %v", err)
	}
	if len(subs) != 1 {
		t.Fatalf("submission count = %d, want 1", len(subs))
	}

	got := subs[0]
	if got.ID != "sub-1" || got.Timestamp != sub.Timestamp {
		t.Errorf("submission = %+v", got)
	}
	if got.Answers["q0"] != "Ada" || got.Answers["q1"] != "Belt" {
		t.Errorf("answers = %v", got.Answers)
	}
	if rating, ok := got.Answers["q3"].(float64); !ok || rating != 4 {
		t.Errorf("rating answer = %#v", got.Answers["q3"])
	}
	date, ok := got.Answers["q4"].(map[string]any)
	if !ok || date["date"] != "2050-06-01" || date["time"] != "08:00" {
		t.Errorf("date answer = %#v", got.Answers["q4"])
	}
}
