package assist

import "testing"

func TestCheckAnswer(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		answer  string
		valid   bool
		message string
	}{
		{"empty answer", "Anything", "   ", false, "This field is required"},
		{"bad email", "Email Address", "not-an-email", false, "Please enter a valid email address"},
		{"good email", "Email Address", "ada@example.com", true, "Valid"},
		{"short name", "Full Name", "x", false, "Name must be at least 2 characters long"},
		{"good name", "Full Name", "Ada", true, "Valid"},
		{"bad url", "Company Website", "not a url", false, "Please enter a valid URL"},
		{"good url", "Company Website", "https://example.com", true, "Valid"},
		{"no rule applies", "Favorite Color", "chartreuse", true, "Valid"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CheckAnswer(tc.label, tc.answer)
			if got.Valid != tc.valid {
				t.Errorf("CheckAnswer(%q, %q).Valid = %v, want %v", tc.label, tc.answer, got.Valid, tc.valid)
			}
			if got.Message != tc.message {
				t.Errorf("CheckAnswer(%q, %q).Message = %q, want %q", tc.label, tc.answer, got.Message, tc.message)
			}
		})
	}
}
