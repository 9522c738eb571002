package export

import (
	"strings"
	"testing"

	"questionbank/qbexport/pkg/bank"
	"questionbank/qbexport/pkg/flatten"
)

const testBank = `{"questions": [
	{"id": 1, "exam": "EX-1", "number": 1, "confidence": 0.95, "text": "Plain", "correct_label": "A",
	 "choices": [{"label": "A", "text": "yes"}, {"label": "B", "text": "no"}]},
	{"id": 2, "exam": "EX-1", "number": 2, "needs_human_review": true, "review_reasons": ["ocr", "layout"],
	 "text": "Contains, a comma and \"quotes\"", "correct_label": "C",
	 "choices": [{"label": "C", "text": "path C:\\temp"}]},
	{"kind": "scenario", "id": 3, "exam": "EX-2", "scenario_id": "SC-1", "scenario_text": "line one\nline two",
	 "subquestions": [{"subq_index": 0, "id": "3a", "number": 3, "text": "Sub", "points": 2}]}
]}`

func testRecords(t *testing.T) []flatten.Record {
	t.Helper()
	b, err := bank.Decode(strings.NewReader(testBank))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	return flatten.Flatten(b)
}
