// Package bank defines the question bank document model and its loader.
//
// A question bank is a JSON document with a top-level "questions" array. Each
// question is either a scenario (a narrative with ordered subquestions) or a
// standalone gradable question with its own choices:
//
//	bank, err := bank.Load("questions.corrected.json")
//	if err != nil {
//	    return err
//	}
//	for _, q := range bank.Questions {
//	    switch v := q.Variant().(type) {
//	    case bank.Scenario:
//	        // v.Subquestions
//	    case bank.Simple:
//	        // v.Choices
//	    }
//	}
//
// # Leniency
//
// The loader does not enforce a schema. Scalar fields are decoded into Value,
// which remembers whether the key was present, whether it was null, and the
// JSON type it carried. Consumers decide on defaults at the point of use.
// Unknown keys are ignored.
package bank
