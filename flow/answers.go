package flow

// AnswerStore maps question ids to the answers collected so far in one
// pass. Values are the canonical shapes produced by model.NormalizeAnswer.
type AnswerStore struct {
	values map[string]any
}

func NewAnswerStore() *AnswerStore {
	return &AnswerStore{values: map[string]any{}}
}

// Set upserts, replacing any prior value outright. Toggling a checkbox
// selection is the caller's job: the store only sees the resulting list.
func (s *AnswerStore) Set(questionID string, value any) {
	s.values[questionID] = value
}

func (s *AnswerStore) Get(questionID string) (any, bool) {
	v, ok := s.values[questionID]
	return v, ok
}

func (s *AnswerStore) Len() int {
	return len(s.values)
}

// Clear empties the store for a fresh pass.
func (s *AnswerStore) Clear() {
	s.values = map[string]any{}
}

// Snapshot returns a copy detached from later mutation. Slice values are
// copied too, so a submitted record cannot be altered by further toggling.
func (s *AnswerStore) Snapshot() map[string]any {
	out := make(map[string]any, len(s.values))
	for id, v := range s.values {
		if list, ok := v.([]string); ok {
			v = append([]string(nil), list...)
		}
		out[id] = v
	}
	return out
}
