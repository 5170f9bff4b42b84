// Package assist holds the authoring-time helpers: prompt-to-form
// generation, label cleanup, option suggestions and the advisory answer
// checker. All of it is heuristic and template-driven; none of it is ever
// consulted by the navigation engine.
package assist

import (
	"strings"

	"github.com/google/uuid"
	"github.com/kuest/kuestionnaire/model"
)

type draftQuestion struct {
	label    string
	qtype    model.QuestionType
	required bool
	options  []string
}

type template struct {
	title       string
	description string
	questions   []draftQuestion
}

var templates = map[string]template{
	"survey": {
		title:       "Customer Satisfaction Survey",
		description: "Help us improve our services with your feedback",
		questions: []draftQuestion{
			{label: "Overall Experience", qtype: model.Rating, required: true},
			{label: "What did you like most?", qtype: model.LongText},
			{label: "Areas for improvement", qtype: model.Checkboxes, options: []string{"Speed", "Quality", "Support", "Pricing", "Features"}},
		},
	},
	"feedback": {
		title:       "Product Feedback Form",
		description: "Share your thoughts about our product",
		questions: []draftQuestion{
			{label: "Product Category", qtype: model.Dropdown, required: true, options: []string{"Software", "Hardware", "Service", "Other"}},
			{label: "Rating", qtype: model.Rating, required: true},
			{label: "Comments", qtype: model.LongText},
		},
	},
	"registration": {
		title:       "Event Registration",
		description: "Register for our upcoming event",
		questions: []draftQuestion{
			{label: "Full Name", qtype: model.ShortText, required: true},
			{label: "Email Address", qtype: model.ShortText, required: true},
			{label: "Dietary Restrictions", qtype: model.Checkboxes, options: []string{"Vegetarian", "Vegan", "Gluten-free", "None"}},
			{label: "Event Date", qtype: model.Date, required: true},
		},
	},
	"contact": {
		title:       "Contact Us",
		description: "Get in touch with our team",
		questions: []draftQuestion{
			{label: "Name", qtype: model.ShortText, required: true},
			{label: "Email", qtype: model.ShortText, required: true},
			{label: "Subject", qtype: model.Dropdown, required: true, options: []string{"General Inquiry", "Support", "Sales", "Partnership"}},
			{label: "Message", qtype: model.LongText, required: true},
		},
	},
}

func pickTemplate(prompt string) template {
	p := strings.ToLower(prompt)
	switch {
	case containsAny(p, "survey", "satisfaction", "feedback"):
		return templates["survey"]
	case containsAny(p, "register", "signup", "event"):
		return templates["registration"]
	case containsAny(p, "contact", "support", "help"):
		return templates["contact"]
	default:
		return templates["feedback"]
	}
}

// contextualQuestions derives extra questions from keywords in the prompt.
// A closing free-text field is always appended.
func contextualQuestions(prompt string) []draftQuestion {
	p := strings.ToLower(prompt)
	var qs []draftQuestion

	if len(prompt) > 50 {
		qs = append(qs, draftQuestion{label: "Getting Started", qtype: model.Section})
	}
	if containsAny(p, "name", "personal") {
		qs = append(qs, draftQuestion{label: "Full Name", qtype: model.ShortText, required: true})
	}
	if containsAny(p, "email", "contact") {
		qs = append(qs, draftQuestion{label: "Email Address", qtype: model.ShortText, required: true})
	}
	if containsAny(p, "rate", "score", "satisfaction") {
		qs = append(qs, draftQuestion{label: "Overall Rating", qtype: model.Rating, required: true})
	}
	if containsAny(p, "prefer", "choose", "select") {
		qs = append(qs, draftQuestion{label: "Your Preference", qtype: model.MultipleChoice, required: true,
			options: []string{"Option A", "Option B", "Option C", "Other"}})
	}
	if containsAny(p, "date", "when", "schedule") {
		qs = append(qs, draftQuestion{label: "Preferred Date", qtype: model.Date, required: true})
	}

	qs = append(qs, draftQuestion{label: "Additional Comments", qtype: model.LongText})
	return qs
}

// Generate builds a draft form from a free-text prompt. Specific prompts
// get questions derived from their keywords, generic ones fall back to the
// closest template. Purely rule-based, so drafts are reproducible.
func Generate(prompt string) model.Form {
	tpl := pickTemplate(prompt)

	questions := tpl.questions
	if custom := contextualQuestions(prompt); len(custom) > 2 {
		questions = custom
	}

	title, description := tpl.title, tpl.description
	if len(prompt) > 10 {
		if derived := deriveTitle(prompt); derived != "" {
			title = derived
		}
		description = "Please fill out this form regarding: " + prompt
	}

	form := model.Form{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Theme:       "nebula",
	}
	for _, dq := range questions {
		q := model.Question{
			ID:       uuid.NewString(),
			Type:     dq.qtype,
			Label:    dq.label,
			Required: dq.required,
		}
		for _, label := range dq.options {
			q.Options = append(q.Options, model.Option{ID: uuid.NewString(), Label: label})
		}
		form.Questions = append(form.Questions, q)
	}
	return form
}

// deriveTitle picks the first few substantial words of the prompt.
func deriveTitle(prompt string) string {
	var words []string
	for _, w := range strings.Fields(prompt) {
		if len(w) > 3 {
			words = append(words, strings.ToUpper(w[:1])+strings.ToLower(w[1:]))
		}
		if len(words) == 3 {
			break
		}
	}
	if len(words) == 0 {
		return ""
	}

	title := strings.Join(words, " ")
	if !strings.Contains(strings.ToLower(title), "form") &&
		!strings.Contains(strings.ToLower(prompt), "form") {
		title += " Form"
	}
	return title
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
