package model

import (
	"encoding/json"
	"testing"
)

func TestIndexOf(t *testing.T) {
	form := Form{Questions: []Question{
		{ID: "q0", Type: ShortText},
		{ID: "q1", Type: Section},
		{ID: "q2", Type: Rating},
	}}

	tests := []struct {
		id   string
		want int
	}{
		{"q0", 0},
		{"q2", 2},
		{"missing", -1},
		{"", -1},
	}
	for _, tc := range tests {
		if got := form.IndexOf(tc.id); got != tc.want {
			t.Errorf("IndexOf(%q) = %d, want %d", tc.id, got, tc.want)
		}
	}
}

func TestQuestionTypeKnown(t *testing.T) {
	for _, qt := range []QuestionType{
		ShortText, LongText, MultipleChoice, Checkboxes, Dropdown,
		Rating, Date, Section, FileUpload, SignaturePad,
	} {
		if !qt.Known() {
			t.Errorf("%s not recognized", qt)
		}
	}
	if QuestionType("SLIDER").Known() {
		t.Error("unknown type recognized")
	}
}

func TestNormalizeAnswer(t *testing.T) {
	tests := []struct {
		name    string
		q       Question
		raw     any
		want    any
		wantErr bool
	}{
		{"short text", Question{ID: "q", Type: ShortText}, "hello", "hello", false},
		{"short text nil", Question{ID: "q", Type: ShortText}, nil, "", false},
		{"short text number rejected", Question{ID: "q", Type: ShortText}, 12.5, nil, true},

		{"checkbox json list", Question{ID: "q", Type: Checkboxes}, []any{"a", "b"}, []string{"a", "b"}, false},
		{"checkbox nil is empty", Question{ID: "q", Type: Checkboxes}, nil, []string{}, false},
		{"checkbox scalar rejected", Question{ID: "q", Type: Checkboxes}, "a", nil, true},
		{"checkbox mixed list rejected", Question{ID: "q", Type: Checkboxes}, []any{"a", 1}, nil, true},

		{"rating json number", Question{ID: "q", Type: Rating}, 4.0, 4, false},
		{"rating string digits", Question{ID: "q", Type: Rating}, "3", 3, false},
		{"rating over custom max", Question{ID: "q", Type: Rating, MaxRating: 10}, 10.0, 10, false},
		{"rating below one", Question{ID: "q", Type: Rating}, 0.0, nil, true},
		{"rating over default max", Question{ID: "q", Type: Rating}, 6.0, nil, true},

		{"plain date", Question{ID: "q", Type: Date}, "2024-03-01", "2024-03-01", false},
		{"timed date", Question{ID: "q", Type: Date, IncludeTime: true},
			map[string]any{"date": "2024-03-01", "time": "14:30"},
			DateValue{Date: "2024-03-01", Time: "14:30"}, false},
		{"timed date needs structure", Question{ID: "q", Type: Date, IncludeTime: true}, "2024-03-01", nil, true},

		{"section takes no answer", Question{ID: "q", Type: Section}, "x", nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeAnswer(tc.q, tc.raw)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("NormalizeAnswer(%v) = %v, want error", tc.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeAnswer(%v): %v", tc.raw, err)
			}
			if !equalAnswer(got, tc.want) {
				t.Errorf("NormalizeAnswer(%v) = %#v, want %#v", tc.raw, got, tc.want)
			}
		})
	}
}

func equalAnswer(a, b any) bool {
	if la, ok := a.([]string); ok {
		lb, ok := b.([]string)
		if !ok || len(la) != len(lb) {
			return false
		}
		for i := range la {
			if la[i] != lb[i] {
				return false
			}
		}
		return true
	}
	return a == b
}

func TestDateValueWireShape(t *testing.T) {
	out, err := json.Marshal(DateValue{Date: "2024-03-01", Time: "14:30"})
	if err != nil {
		t.Fatal(err)
	}
	want := `{"date":"2024-03-01","time":"14:30"}`
	if string(out) != want {
		t.Errorf("encoded = %s, want %s", out, want)
	}
}
