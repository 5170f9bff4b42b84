package stats

import (
	"testing"

	"github.com/kuest/kuestionnaire/model"
)

func testForm() model.Form {
	return model.Form{
		ID: "form-1",
		Questions: []model.Question{
			{ID: "s0", Type: model.Section, Label: "Intro"},
			{ID: "q0", Type: model.Dropdown, Label: "Origin",
				Options: []model.Option{{ID: "o1", Label: "Earth"}, {ID: "o2", Label: "Luna"}}},
			{ID: "q1", Type: model.Checkboxes, Label: "Objectives",
				Options: []model.Option{{ID: "o1", Label: "Infiltration"}, {ID: "o2", Label: "Extraction"}}},
			{ID: "q2", Type: model.Rating, Label: "Comfort", MaxRating: 5},
			{ID: "q3", Type: model.ShortText, Label: "Notes"},
		},
	}
}

func submission(id, ts string, answers map[string]any) model.Submission {
	return model.Submission{ID: id, FormID: "form-1", Timestamp: ts, Answers: answers}
}

func TestSummarize(t *testing.T) {
	subs := []model.Submission{
		submission("s1", "2024-03-01T10:00:00Z", map[string]any{
			"q0": "Earth",
			"q1": []any{"Infiltration", "Extraction"}, // shape after a JSON decode
			"q2": 4.0,
			"q3": "fine",
		}),
		submission("s2", "2024-03-02T09:00:00Z", map[string]any{
			"q0": "Earth",
			"q1": []string{"Extraction"},
			"q2": 2,
		}),
		submission("s3", "2024-03-01T23:00:00Z", map[string]any{
			"q0": "Luna",
		}),
	}

	got := Summarize(testForm(), subs)

	if got.TotalSubmissions != 3 {
		t.Errorf("total = %d, want 3", got.TotalSubmissions)
	}
	if got.LastSubmission != "2024-03-02T09:00:00Z" {
		t.Errorf("last submission = %q", got.LastSubmission)
	}

	// Sections are not data-bearing and never appear.
	if len(got.Questions) != 4 {
		t.Fatalf("question stats count = %d, want 4", len(got.Questions))
	}
	for _, qs := range got.Questions {
		if qs.QuestionID == "s0" {
			t.Fatal("section leaked into stats")
		}
	}

	origin := got.Questions[0]
	if origin.Answered != 3 || origin.OptionCounts["Earth"] != 2 || origin.OptionCounts["Luna"] != 1 {
		t.Errorf("origin stats = %+v", origin)
	}

	objectives := got.Questions[1]
	if objectives.Answered != 2 || objectives.OptionCounts["Extraction"] != 2 || objectives.OptionCounts["Infiltration"] != 1 {
		t.Errorf("objectives stats = %+v", objectives)
	}

	comfort := got.Questions[2]
	if comfort.Answered != 2 || comfort.AverageRating != 3 {
		t.Errorf("comfort stats = %+v", comfort)
	}

	notes := got.Questions[3]
	if notes.Answered != 1 || notes.OptionCounts != nil {
		t.Errorf("notes stats = %+v", notes)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	got := Summarize(testForm(), nil)

	if got.TotalSubmissions != 0 || got.LastSubmission != "" {
		t.Errorf("summary = %+v", got)
	}
	for _, qs := range got.Questions {
		if qs.Answered != 0 {
			t.Errorf("question %s answered = %d", qs.QuestionID, qs.Answered)
		}
	}
}
