package flatten

import (
	"strings"

	"questionbank/qbexport/pkg/bank"
)

// reasonSeparator joins review reasons into a single cell.
const reasonSeparator = ";"

var defaultPoints = bank.IntValue(1)

// Flatten returns one record per gradable unit of b, in document order.
func Flatten(b *bank.Bank) []Record {
	if b == nil {
		return nil
	}

	records := make([]Record, 0, len(b.Questions))
	for _, q := range b.Questions {
		records = append(records, flattenQuestion(q)...)
	}
	return records
}

func flattenQuestion(q bank.Question) []Record {
	common := commonFields(q)

	switch v := q.Variant().(type) {
	case bank.Scenario:
		records := make([]Record, 0, len(v.Subquestions))
		for _, sq := range v.Subquestions {
			r := common
			r.ScenarioID = v.ID
			r.ScenarioText = v.Text
			r.SubqIndex = sq.Index
			r.SubqID = sq.ID
			r.SubqNumber = sq.Number
			r.QuestionText = sq.Text
			r.CorrectLabel = sq.CorrectLabel
			r.Points = sq.Points.Or(defaultPoints)
			setChoices(&r, sq.Choices)
			records = append(records, r)
		}
		return records

	case bank.Simple:
		r := common
		r.ScenarioID = v.ScenarioID
		r.ScenarioText = v.ScenarioText
		r.QuestionText = v.Text
		r.CorrectLabel = v.CorrectLabel
		r.Points = v.Points.Or(defaultPoints)
		setChoices(&r, v.Choices)
		return []Record{r}
	}

	return nil
}

// commonFields fills the columns every record of q shares.
func commonFields(q bank.Question) Record {
	return Record{
		Kind:             q.RawKind.Or(bank.StringValue(string(bank.KindMCQ))),
		ID:               q.ID,
		Exam:             q.Exam,
		Number:           q.Number,
		Confidence:       q.Confidence,
		NeedsHumanReview: q.NeedsHumanReview.Or(bank.BoolValue(false)),
		ReviewReasons:    joinReasons(q.ReviewReasons),
	}
}

func joinReasons(reasons []bank.Value) string {
	if len(reasons) == 0 {
		return ""
	}
	parts := make([]string, len(reasons))
	for i, reason := range reasons {
		parts[i] = reason.String()
	}
	return strings.Join(parts, reasonSeparator)
}

func setChoices(r *Record, choices bank.Choices) {
	r.A = PickChoice(choices, "A")
	r.B = PickChoice(choices, "B")
	r.C = PickChoice(choices, "C")
	r.D = PickChoice(choices, "D")
}

// PickChoice returns the text of the first choice labeled label, or null when
// there is none.
func PickChoice(choices bank.Choices, label string) bank.Value {
	text, ok := choices.Lookup(label)
	if !ok {
		return bank.Null()
	}
	return text
}

// NeedsReview returns the records flagged for human review, preserving order.
func NeedsReview(records []Record) []Record {
	var out []Record
	for i := range records {
		if records[i].NeedsReview() {
			out = append(out, records[i])
		}
	}
	return out
}

// Stats summarizes a flattened bank.
type Stats struct {
	Questions   int            `json:"questions"`
	Scenarios   int            `json:"scenarios"`
	Records     int            `json:"records"`
	NeedsReview int            `json:"needs_review"`
	ByKind      map[string]int `json:"by_kind"`
}

// Summarize computes Stats for b without keeping the records around.
func Summarize(b *bank.Bank) Stats {
	stats := Stats{ByKind: make(map[string]int)}
	if b == nil {
		return stats
	}

	stats.Questions = len(b.Questions)
	for _, q := range b.Questions {
		if q.Kind() == bank.KindScenario {
			stats.Scenarios++
		}
		for _, r := range flattenQuestion(q) {
			stats.Records++
			stats.ByKind[r.Kind.String()]++
			if r.NeedsReview() {
				stats.NeedsReview++
			}
		}
	}
	return stats
}

// CountByKind tallies records by their kind column.
func CountByKind(records []Record) map[string]int {
	counts := make(map[string]int)
	for i := range records {
		counts[records[i].Kind.String()]++
	}
	return counts
}
