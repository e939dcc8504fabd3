package assessment

import "context"

// SeedCatalog upserts the built-in screens. Called once at startup; the
// upsert keeps restarts idempotent and refreshes wording edits.
func SeedCatalog(ctx context.Context, store Store) error {
	for _, t := range builtinCatalog {
		if err := store.PutTest(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

var frequencyOptions = []Option{
	{Text: "Not at all", Score: 0},
	{Text: "Several days", Score: 2},
	{Text: "More than half the days", Score: 4},
	{Text: "Nearly every day", Score: 6},
}

var builtinCatalog = []Test{
	{
		ID:          "mood-check",
		Title:       "Mood Check-In",
		Description: "A short self-check on mood and energy over the last two weeks.",
		Questions: []Question{
			{Text: "Little interest or pleasure in doing things", Options: frequencyOptions},
			{Text: "Feeling down, depressed, or hopeless", Options: frequencyOptions},
			{Text: "Trouble falling or staying asleep, or sleeping too much", Options: frequencyOptions},
			{Text: "Feeling tired or having little energy", Options: frequencyOptions},
			{Text: "Poor appetite or overeating", Options: frequencyOptions},
			{Text: "Feeling bad about yourself, or that you are a failure", Options: frequencyOptions},
			{Text: "Trouble concentrating on things like reading or watching TV", Options: frequencyOptions},
		},
	},
	{
		ID:          "worry-check",
		Title:       "Worry Check-In",
		Description: "A short self-check on worry and tension over the last two weeks.",
		Questions: []Question{
			{Text: "Feeling nervous, anxious, or on edge", Options: frequencyOptions},
			{Text: "Not being able to stop or control worrying", Options: frequencyOptions},
			{Text: "Worrying too much about different things", Options: frequencyOptions},
			{Text: "Trouble relaxing", Options: frequencyOptions},
			{Text: "Being so restless that it is hard to sit still", Options: frequencyOptions},
			{Text: "Becoming easily annoyed or irritable", Options: frequencyOptions},
			{Text: "Feeling afraid as if something awful might happen", Options: frequencyOptions},
		},
	},
}
