// Package flatten turns a question bank into flat records, one per gradable
// unit: a standalone question produces one record and a scenario produces one
// record per subquestion.
//
// Records keep the order of the source document. Missing keys never fail;
// each column has a default that is applied when the record is built:
//
//	kind                 "mcq" (an explicit null stays null)
//	needs_human_review   false
//	review_reasons       "" (joined with ";")
//	points               1
//
// Everything else is passed through, and is null when absent.
package flatten
