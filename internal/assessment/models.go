package assessment

// Option is one selectable answer with its contribution to the total score.
// Scores are plain integers; negative and zero values are allowed.
type Option struct {
	Text  string `json:"text"`
	Score int    `json:"score"`
}

type Question struct {
	Text    string   `json:"text"`
	Options []Option `json:"options"`
}

// Test is authored content, immutable at runtime.
type Test struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
	CreatedAt   int64      `json:"createdAt,omitempty"`
}

// TestSummary is the listing projection: no question or option detail.
type TestSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TestResult is created exactly once per submission and never mutated.
// TestID is an unenforced reference; deleting a test leaves results orphaned.
type TestResult struct {
	ID          string `json:"id"`
	TestID      string `json:"testId"`
	AnonymousID string `json:"anonymousId"`
	Answers     []int  `json:"answers"`
	Score       int    `json:"score"`
	Band        string `json:"band"`
	CreatedAt   int64  `json:"createdAt"`
}
