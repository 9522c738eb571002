package bank

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Choice is one labeled answer option.
type Choice struct {
	Label Value `json:"label"`
	Text  Value `json:"text"`
}

// Choices is the answer options of a question or subquestion. It decodes from
// either an array of {"label", "text"} objects or an object mapping label to
// text. Labels are not required to be unique.
type Choices []Choice

// Lookup returns the text of the first choice labeled label.
func (c Choices) Lookup(label string) (Value, bool) {
	for _, choice := range c {
		if choice.Label.Is(label) {
			return choice.Text, true
		}
	}
	return Value{}, false
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Choices) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*c = nil
		return nil
	}
	if data[0] == '{' {
		return c.unmarshalObject(data)
	}

	var list []Choice
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*c = list
	return nil
}

// unmarshalObject decodes the label-to-text form, keeping document order.
func (c *Choices) unmarshalObject(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return err
	}

	var list []Choice
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		label, ok := tok.(string)
		if !ok {
			return fmt.Errorf("choices: unexpected key %v", tok)
		}
		var text Value
		if err := dec.Decode(&text); err != nil {
			return fmt.Errorf("choices: label %q: %w", label, err)
		}
		list = append(list, Choice{Label: StringValue(label), Text: text})
	}
	*c = list
	return nil
}
