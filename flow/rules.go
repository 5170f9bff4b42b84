package flow

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kuest/kuestionnaire/model"
)

// nextIndex computes the position Advance moves to from question i.
// Sections always fall through. Otherwise the question's rules are scanned
// in array order against the recorded answer; the first rule that matches
// and resolves wins. A rule whose jump target is not in the form counts as
// a non-match and scanning continues. No rule matching means i+1. The
// result is clamped at N but may land before i: backward jumps are legal
// and there is deliberately no cycle guard.
func nextIndex(form model.Form, i int, answers *AnswerStore) int {
	n := len(form.Questions)
	q := form.Questions[i]
	if q.Type == model.Section {
		return clampStep(i+1, n)
	}

	answer, _ := answers.Get(q.ID)
	next := i + 1
	for _, rule := range q.Logic {
		if !ruleMatches(rule, answer) {
			continue
		}
		if target := form.IndexOf(rule.JumpToID); target >= 0 {
			next = target
			break
		}
		// dangling jump target: keep scanning
	}
	return clampStep(next, n)
}

func clampStep(next, n int) int {
	if next >= n {
		return n
	}
	return next
}

// ruleMatches evaluates one rule against an answer. Comparison is
// case-insensitive. A missing answer compares as the empty string.
//
// Multi-value answers use membership semantics for both Equals and
// Contains: Equals degrades to "the selection includes the value" rather
// than set equality. That asymmetry is a kept behavioral contract, not an
// oversight. NotEquals compares against the comma-joined selection.
func ruleMatches(rule model.LogicRule, answer any) bool {
	want := strings.ToLower(rule.Value)

	if list, ok := answerList(answer); ok {
		switch rule.Condition {
		case model.Equals, model.Contains:
			for _, v := range list {
				if strings.ToLower(v) == want {
					return true
				}
			}
			return false
		case model.NotEquals:
			return strings.ToLower(strings.Join(list, ",")) != want
		}
		return false
	}

	got := strings.ToLower(answerString(answer))
	switch rule.Condition {
	case model.Equals:
		return got == want
	case model.NotEquals:
		return got != want
	case model.Contains:
		return strings.Contains(got, want)
	}
	return false
}

func answerList(answer any) ([]string, bool) {
	switch v := answer.(type) {
	case []string:
		return v, true
	case []any:
		out := make([]string, len(v))
		for i, item := range v {
			out[i] = fmt.Sprint(item)
		}
		return out, true
	}
	return nil, false
}

// answerString renders a scalar answer for comparison.
func answerString(answer any) string {
	switch v := answer.(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case model.DateValue:
		if v.Time == "" {
			return v.Date
		}
		return v.Date + " " + v.Time
	default:
		return fmt.Sprint(v)
	}
}
