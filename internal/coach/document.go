package coach

import "time"

// Document is an advice payload from the AI service. No schema is enforced
// upstream: the service echoes whatever structure the model produced, so
// every field access must tolerate absence. Accessors return zero values for
// missing or mistyped fields instead of panicking.
type Document map[string]any

// Section descends into a nested object, returning nil when any step of the
// path is missing or not an object.
func (d Document) Section(path ...string) Document {
	cur := d
	for _, key := range path {
		next, ok := cur[key].(map[string]any)
		if !ok {
			return nil
		}
		cur = next
	}
	return cur
}

// Text returns the string at the given path, or "" when absent.
func (d Document) Text(path ...string) string {
	if len(path) == 0 {
		return ""
	}
	parent := d.Section(path[:len(path)-1]...)
	if parent == nil {
		return ""
	}
	s, _ := parent[path[len(path)-1]].(string)
	return s
}

// Strings returns the list of strings at the given path. Non-string items
// are skipped; an absent field yields nil.
func (d Document) Strings(path ...string) []string {
	items := d.items(path)
	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Sections returns the list of nested objects at the given path. Non-object
// items are skipped; an absent field yields nil.
func (d Document) Sections(path ...string) []Document {
	items := d.items(path)
	var out []Document
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, Document(m))
		}
	}
	return out
}

func (d Document) items(path []string) []any {
	if len(path) == 0 {
		return nil
	}
	parent := d.Section(path[:len(path)-1]...)
	if parent == nil {
		return nil
	}
	items, _ := parent[path[len(path)-1]].([]any)
	return items
}

// Recommendation is the per-activity analysis document. Unlike the free-form
// advice documents this one has a stable shape.
type Recommendation struct {
	ID             string    `json:"id,omitempty"`
	ActivityID     string    `json:"activityId"`
	UserID         string    `json:"userId,omitempty"`
	ActivityType   string    `json:"activityType"`
	Recommendation string    `json:"recommendation"`
	Improvements   []string  `json:"improvements"`
	Suggestions    []string  `json:"suggestions"`
	Safety         []string  `json:"safety"`
	CreatedAt      time.Time `json:"createdAt,omitempty"`
}
