// Package stats computes per-form response analytics from stored
// submissions. It reads the records the engine emitted; it never touches
// engine state.
package stats

import (
	"fmt"

	"github.com/kuest/kuestionnaire/model"
)

type Summary struct {
	FormID           string          `json:"formId"`
	TotalSubmissions int             `json:"totalSubmissions"`
	LastSubmission   string          `json:"lastSubmission,omitempty"`
	Questions        []QuestionStats `json:"questions"`
}

type QuestionStats struct {
	QuestionID    string             `json:"questionId"`
	Label         string             `json:"label"`
	Type          model.QuestionType `json:"type"`
	Answered      int                `json:"answered"`
	OptionCounts  map[string]int     `json:"optionCounts,omitempty"`
	AverageRating float64            `json:"averageRating,omitempty"`
}

// Summarize tallies submissions against the form's data-bearing questions.
// Sections are skipped; answers for questions since removed from the form
// are ignored.
func Summarize(form model.Form, submissions []model.Submission) Summary {
	summary := Summary{
		FormID:           form.ID,
		TotalSubmissions: len(submissions),
		Questions:        []QuestionStats{},
	}

	for _, sub := range submissions {
		// RFC3339 timestamps order lexicographically
		if sub.Timestamp > summary.LastSubmission {
			summary.LastSubmission = sub.Timestamp
		}
	}

	for _, q := range form.Questions {
		if !q.Type.DataBearing() {
			continue
		}
		summary.Questions = append(summary.Questions, questionStats(q, submissions))
	}
	return summary
}

func questionStats(q model.Question, submissions []model.Submission) QuestionStats {
	qs := QuestionStats{QuestionID: q.ID, Label: q.Label, Type: q.Type}

	if q.Type.HasOptions() {
		qs.OptionCounts = map[string]int{}
	}

	var ratingSum, ratingCount int
	for _, sub := range submissions {
		answer, ok := sub.Answers[q.ID]
		if !ok || answer == nil {
			continue
		}
		qs.Answered++

		switch q.Type {
		case model.MultipleChoice, model.Dropdown:
			qs.OptionCounts[fmt.Sprint(answer)]++
		case model.Checkboxes:
			for _, label := range selections(answer) {
				qs.OptionCounts[label]++
			}
		case model.Rating:
			if n, ok := ratingValue(answer); ok {
				ratingSum += n
				ratingCount++
			}
		}
	}

	if ratingCount > 0 {
		qs.AverageRating = float64(ratingSum) / float64(ratingCount)
	}
	return qs
}

// selections tolerates both canonical []string answers and []any lists
// fresh off a JSON decode.
func selections(answer any) []string {
	switch v := answer.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, len(v))
		for i, item := range v {
			out[i] = fmt.Sprint(item)
		}
		return out
	}
	return nil
}

func ratingValue(answer any) (int, bool) {
	switch v := answer.(type) {
	case int:
		return v, true
	case float64:
		return int(v), true
	}
	return 0, false
}
