package bank

// Kind is the discriminator carried in a question's "kind" key.
type Kind string

const (
	// KindMCQ is a standalone multiple choice question. It is also the kind
	// assumed when the key is missing.
	KindMCQ Kind = "mcq"
	// KindScenario groups subquestions under a shared narrative.
	KindScenario Kind = "scenario"
)

// Bank is a question bank document.
type Bank struct {
	Questions []Question `json:"questions"`
}

// Question is one top-level entry of a bank. Which of the variant fields are
// meaningful depends on Kind; see Variant.
type Question struct {
	RawKind          Value   `json:"kind"`
	ID               Value   `json:"id"`
	Exam             Value   `json:"exam"`
	Number           Value   `json:"number"`
	Confidence       Value   `json:"confidence"`
	NeedsHumanReview Value   `json:"needs_human_review"`
	ReviewReasons    []Value `json:"review_reasons"`

	ScenarioID   Value         `json:"scenario_id"`
	ScenarioText Value         `json:"scenario_text"`
	Subquestions []Subquestion `json:"subquestions"`

	Text         Value   `json:"text"`
	CorrectLabel Value   `json:"correct_label"`
	Points       Value   `json:"points"`
	Choices      Choices `json:"choices"`
}

// Subquestion is a gradable question nested in a scenario.
type Subquestion struct {
	Index        Value   `json:"subq_index"`
	ID           Value   `json:"id"`
	Number       Value   `json:"number"`
	Text         Value   `json:"text"`
	CorrectLabel Value   `json:"correct_label"`
	Points       Value   `json:"points"`
	Choices      Choices `json:"choices"`
}

// Kind returns the question kind, KindMCQ when the key is absent. An explicit
// null yields the empty kind, which takes the simple branch.
func (q Question) Kind() Kind {
	if !q.RawKind.Present() {
		return KindMCQ
	}
	return Kind(q.RawKind.String())
}

// Variant is implemented by Scenario and Simple.
type Variant interface {
	variant()
}

// Scenario is the scenario view of a question.
type Scenario struct {
	ID           Value
	Text         Value
	Subquestions []Subquestion
}

// Simple is the view of any non-scenario question.
type Simple struct {
	ScenarioID   Value
	ScenarioText Value
	Text         Value
	CorrectLabel Value
	Points       Value
	Choices      Choices
}

func (Scenario) variant() {}
func (Simple) variant()   {}

// Variant returns the kind-specific view of q.
func (q Question) Variant() Variant {
	if q.Kind() == KindScenario {
		return Scenario{
			ID:           q.ScenarioID,
			Text:         q.ScenarioText,
			Subquestions: q.Subquestions,
		}
	}
	return Simple{
		ScenarioID:   q.ScenarioID,
		ScenarioText: q.ScenarioText,
		Text:         q.Text,
		CorrectLabel: q.CorrectLabel,
		Points:       q.Points,
		Choices:      q.Choices,
	}
}
