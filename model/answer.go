package model

import (
	"fmt"
	"strconv"
)

// DateValue is the answer shape for Date questions that include a time part.
type DateValue struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// NormalizeAnswer coerces a freshly decoded JSON value into the canonical
// answer shape for the question type: string for text and single-choice
// types, []string for checkboxes, int for ratings, string or DateValue for
// dates. The canonical shapes round-trip through JSON unchanged.
func NormalizeAnswer(q Question, raw any) (any, error) {
	switch q.Type {
	case Section:
		return nil, fmt.Errorf("section %q takes no answer", q.ID)

	case Checkboxes:
		switch v := raw.(type) {
		case nil:
			return []string{}, nil
		case []string:
			return v, nil
		case []any:
			out := make([]string, 0, len(v))
			for _, item := range v {
				s, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("checkbox answer for %q must be a list of strings", q.ID)
				}
				out = append(out, s)
			}
			return out, nil
		}
		return nil, fmt.Errorf("checkbox answer for %q must be a list of strings", q.ID)

	case Rating:
		var n int
		switch v := raw.(type) {
		case int:
			n = v
		case float64:
			n = int(v)
		case string:
			parsed, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("rating answer for %q must be a number", q.ID)
			}
			n = parsed
		default:
			return nil, fmt.Errorf("rating answer for %q must be a number", q.ID)
		}
		max := q.MaxRating
		if max <= 0 {
			max = 5
		}
		if n < 1 || n > max {
			return nil, fmt.Errorf("rating answer for %q out of range [1, %d]", q.ID, max)
		}
		return n, nil

	case Date:
		if q.IncludeTime {
			switch v := raw.(type) {
			case DateValue:
				return v, nil
			case map[string]any:
				date, _ := v["date"].(string)
				t, _ := v["time"].(string)
				return DateValue{Date: date, Time: t}, nil
			}
			return nil, fmt.Errorf("date answer for %q must carry date and time", q.ID)
		}
		if s, ok := raw.(string); ok {
			return s, nil
		}
		return nil, fmt.Errorf("date answer for %q must be a string", q.ID)

	default:
		if raw == nil {
			return "", nil
		}
		if s, ok := raw.(string); ok {
			return s, nil
		}
		return nil, fmt.Errorf("answer for %q must be a string", q.ID)
	}
}
