// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package aggregate turns a question's responses into a render-ready view.

	views := aggregate.AggregateAll(questions, candidates, responses, aggregate.MatchByText)

Text questions keep the ordered raw answer texts. Choice questions
produce parallel label/count series, labelled from the candidate set
or, when a question has no candidates, from the distinct answer texts
observed in the responses.

# Matching

MatchByText is the default and matches responses to labels by string
equality of the answer text — even when the response carries an
answer_id. That is the behavior every existing dashboard count was
produced under. MatchByID is the corrected semantics; pick it
deliberately, knowing counts can differ.

An answer text present in no label counts nowhere, which is why
sum(counts) can be less than the number of responses for a question.
*/
package aggregate
