package assist

import (
	"regexp"
	"strings"
)

var labelFixes = []struct {
	pattern     *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`\?$`), ""},
	{regexp.MustCompile(`(?i)^what is your`), "Your"},
	{regexp.MustCompile(`(?i)^please enter`), ""},
	{regexp.MustCompile(`(?i)^input`), ""},
}

// RefineLabel tidies a question label: strips filler prefixes and trailing
// question marks, capitalizes. Returns the input unchanged when the rules
// would erase it entirely.
func RefineLabel(label string) string {
	refined := strings.TrimSpace(label)
	for _, fix := range labelFixes {
		refined = strings.TrimSpace(fix.pattern.ReplaceAllString(refined, fix.replacement))
	}
	if refined == "" {
		return label
	}
	return strings.ToUpper(refined[:1]) + refined[1:]
}

var optionSets = map[string][]string{
	"colors":       {"Red", "Blue", "Green", "Yellow", "Purple", "Orange", "Pink", "Black", "White", "Gray"},
	"sizes":        {"Extra Small", "Small", "Medium", "Large", "Extra Large"},
	"priorities":   {"Low", "Medium", "High", "Critical"},
	"frequencies":  {"Never", "Rarely", "Sometimes", "Often", "Always"},
	"satisfaction": {"Very Dissatisfied", "Dissatisfied", "Neutral", "Satisfied", "Very Satisfied"},
	"agreement":    {"Strongly Disagree", "Disagree", "Neutral", "Agree", "Strongly Agree"},
	"experience":   {"Beginner", "Intermediate", "Advanced", "Expert"},
	"departments":  {"Sales", "Marketing", "Engineering", "Support", "HR", "Finance"},
	"countries":    {"United States", "Canada", "United Kingdom", "Germany", "France", "Australia", "Japan"},
	"industries":   {"Technology", "Healthcare", "Finance", "Education", "Retail", "Manufacturing", "Other"},
}

// SuggestOptions proposes choice options for a topic, falling back to a
// generic set when no canned list fits.
func SuggestOptions(topic string) []string {
	t := strings.ToLower(topic)
	for key, set := range optionSets {
		if strings.Contains(t, strings.TrimSuffix(key, "s")) {
			return append([]string(nil), set...)
		}
	}
	return []string{"Option 1", "Option 2", "Option 3", "Other"}
}
