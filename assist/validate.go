package assist

import (
	"net/url"
	"regexp"
	"strings"
)

// Verdict is an advisory judgment on an answer. It annotates the step for
// the respondent and never gates navigation.
type Verdict struct {
	Valid   bool   `json:"isValid"`
	Message string `json:"message"`
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CheckAnswer applies lightweight plausibility rules keyed off the
// question label. Anything the rules don't cover passes: the checker
// fails open.
func CheckAnswer(label, answer string) Verdict {
	if strings.TrimSpace(answer) == "" {
		return Verdict{Valid: false, Message: "This field is required"}
	}

	l := strings.ToLower(label)

	if strings.Contains(l, "email") && !emailPattern.MatchString(answer) {
		return Verdict{Valid: false, Message: "Please enter a valid email address"}
	}

	if strings.Contains(l, "name") && len(strings.TrimSpace(answer)) < 2 {
		return Verdict{Valid: false, Message: "Name must be at least 2 characters long"}
	}

	if strings.Contains(l, "website") || strings.Contains(l, "url") {
		u, err := url.Parse(answer)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return Verdict{Valid: false, Message: "Please enter a valid URL"}
		}
	}

	return Verdict{Valid: true, Message: "Valid"}
}
