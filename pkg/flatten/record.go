package flatten

import "questionbank/qbexport/pkg/bank"

// Columns is the output column order shared by every export format.
var Columns = []string{
	"kind", "id", "exam", "number", "confidence", "needs_human_review", "review_reasons",
	"scenario_id", "scenario_text",
	"subq_index", "subq_id", "subq_number",
	"question_text", "correct_label", "points",
	"A", "B", "C", "D",
}

// ChoiceLabels are the labels extracted into their own columns.
var ChoiceLabels = []string{"A", "B", "C", "D"}

// Record is one output row.
type Record struct {
	Kind             bank.Value
	ID               bank.Value
	Exam             bank.Value
	Number           bank.Value
	Confidence       bank.Value
	NeedsHumanReview bank.Value
	ReviewReasons    string

	ScenarioID   bank.Value
	ScenarioText bank.Value

	SubqIndex  bank.Value
	SubqID     bank.Value
	SubqNumber bank.Value

	QuestionText bank.Value
	CorrectLabel bank.Value
	Points       bank.Value

	A bank.Value
	B bank.Value
	C bank.Value
	D bank.Value
}

// Values returns the record's cells in Columns order.
func (r *Record) Values() []bank.Value {
	return []bank.Value{
		r.Kind, r.ID, r.Exam, r.Number, r.Confidence, r.NeedsHumanReview,
		bank.StringValue(r.ReviewReasons),
		r.ScenarioID, r.ScenarioText,
		r.SubqIndex, r.SubqID, r.SubqNumber,
		r.QuestionText, r.CorrectLabel, r.Points,
		r.A, r.B, r.C, r.D,
	}
}

// Map returns the record keyed by column name.
func (r *Record) Map() map[string]bank.Value {
	values := r.Values()
	m := make(map[string]bank.Value, len(values))
	for i, col := range Columns {
		m[col] = values[i]
	}
	return m
}

// NeedsReview reports whether needs_human_review is exactly boolean true.
func (r *Record) NeedsReview() bool {
	return r.NeedsHumanReview.IsTrue()
}
