package credits

// Feature modes are grouped into flat-rate cost tiers. The tiers mirror the
// pricing shown in the browser extension, so the two must be kept in sync.
var (
	textProcessingModes = []string{
		"reframe_casual", "reframe_technical", "reframe_professional",
		"reframe_eli5", "reframe_short", "reframe_long",
	}

	convertPromptModes = []string{
		"convert_concise", "convert_balanced", "convert_detailed",
	}

	personaModes = []string{"persona_generator"}

	imageModes = []string{"image_prompt", "image_caption"}

	explainModes = []string{"explain_meaning", "explain_story", "explain_eli5"}

	assistantModes = []string{"smart_followups", "smart_actions", "smart_enhancements"}

	freeModes = []string{"save_note", "save_prompt", "save_persona"}
)

// DefaultCost is charged for any mode that is not in a known tier. Unknown
// modes are billable by default so a new feature shipped in the extension
// before the table is updated never runs free.
const DefaultCost = 6

var costByMode = buildCostTable()

func buildCostTable() map[string]int {
	table := make(map[string]int)
	add := func(modes []string, cost int) {
		for _, m := range modes {
			table[m] = cost
		}
	}
	add(textProcessingModes, 6)
	add(convertPromptModes, 8)
	add(personaModes, 10)
	add(imageModes, 12)
	add(explainModes, 5)
	add(assistantModes, 15)
	add(freeModes, 0)
	return table
}

// Cost returns the credit price of a feature mode. It is a total function:
// modes outside every tier map to DefaultCost rather than an error.
func Cost(mode string) int {
	if cost, ok := costByMode[mode]; ok {
		return cost
	}
	return DefaultCost
}

// FreeModes returns the modes that never touch the ledger.
func FreeModes() []string {
	out := make([]string, len(freeModes))
	copy(out, freeModes)
	return out
}
