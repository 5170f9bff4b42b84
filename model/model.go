package model

// QuestionType is the closed set of question variants a form may contain.
type QuestionType string

const (
	ShortText      QuestionType = "SHORT_TEXT"
	LongText       QuestionType = "LONG_TEXT"
	MultipleChoice QuestionType = "MULTIPLE_CHOICE"
	Checkboxes     QuestionType = "CHECKBOXES"
	Dropdown       QuestionType = "DROPDOWN"
	Rating         QuestionType = "RATING"
	Date           QuestionType = "DATE"
	Section        QuestionType = "SECTION"
	FileUpload     QuestionType = "FILE_UPLOAD"
	SignaturePad   QuestionType = "SIGNATURE_PAD"
)

func (t QuestionType) Known() bool {
	switch t {
	case ShortText, LongText, MultipleChoice, Checkboxes, Dropdown,
		Rating, Date, Section, FileUpload, SignaturePad:
		return true
	}
	return false
}

// HasOptions reports whether questions of this type carry an options list.
func (t QuestionType) HasOptions() bool {
	switch t {
	case MultipleChoice, Checkboxes, Dropdown:
		return true
	}
	return false
}

// DataBearing reports whether questions of this type record an answer.
// Sections are headings, not data.
func (t QuestionType) DataBearing() bool {
	return t != Section
}

// Condition is the comparison a logic rule applies to an answer.
type Condition string

const (
	Equals    Condition = "equals"
	NotEquals Condition = "not_equals"
	Contains  Condition = "contains"
)

type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// LogicRule is one branching instruction: when the answer matches Value
// under Condition, navigation jumps to the question named by JumpToID.
// Rules are evaluated in array order, first match wins.
type LogicRule struct {
	ID        string    `json:"id"`
	Condition Condition `json:"condition"`
	Value     string    `json:"value"`
	JumpToID  string    `json:"jumpToId"`
}

type Question struct {
	ID          string       `json:"id"`
	Type        QuestionType `json:"type"`
	Label       string       `json:"label"`
	Description string       `json:"description,omitempty"`
	Required    bool         `json:"required"`
	Options     []Option     `json:"options,omitempty"`
	Logic       []LogicRule  `json:"logic,omitempty"`

	// text
	Placeholder string `json:"placeholder,omitempty"`
	InputType   string `json:"inputType,omitempty"` // text, email, url, number, tel

	// rating
	MaxRating      int    `json:"maxRating,omitempty"`
	RatingIcon     string `json:"ratingIcon,omitempty"` // star, heart, zap
	RatingMinLabel string `json:"ratingMinLabel,omitempty"`
	RatingMaxLabel string `json:"ratingMaxLabel,omitempty"`

	// date
	IncludeTime bool `json:"includeTime,omitempty"`

	// choice
	RandomizeOptions bool `json:"randomizeOptions,omitempty"`

	// file upload
	AcceptedFileTypes string `json:"acceptedFileTypes,omitempty"`
	MaxFileSizeMB     int    `json:"maxFileSize,omitempty"`

	// signature pad
	SignatureRequireDraw  bool   `json:"signatureRequireDraw,omitempty"`
	SignatureInstructions string `json:"signatureInstructions,omitempty"`
}

// Form is an ordered question sequence plus presentation metadata.
// Question order is the default linear path.
type Form struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Questions       []Question `json:"questions"`
	Theme           string     `json:"theme,omitempty"`
	ThankYouTitle   string     `json:"thankYouTitle,omitempty"`
	ThankYouMessage string     `json:"thankYouMessage,omitempty"`
}

// IndexOf resolves a question id to its position, or -1 when absent.
func (f Form) IndexOf(questionID string) int {
	if questionID == "" {
		return -1
	}
	for i, q := range f.Questions {
		if q.ID == questionID {
			return i
		}
	}
	return -1
}

// Submission is the immutable record of one completed pass through a form.
type Submission struct {
	ID        string         `json:"id"`
	FormID    string         `json:"formId"`
	Timestamp string         `json:"timestamp"`
	Answers   map[string]any `json:"answers"`
}
