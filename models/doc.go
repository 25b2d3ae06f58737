// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines wire and domain types shared across the client.

# Domain Types

  - Survey: survey metadata, addressable by numeric id or short code
  - Question: one survey question; display order is backend list order
  - CandidateAnswer: a fixed answer choice for Multiple/Boolean questions
  - Response: one submitted answer for one (responder, question) pair
  - UserSummary: the signed-in user as reported by the backend

# Wire Quirks

The backend predates this client and its JSON is uneven. The types here
absorb the known quirks so nothing else has to:

  - Survey descriptions may arrive under "discription"
  - Response text may arrive under "response" instead of "answer"
  - Question text arrives under "question", candidate text under "answer"

# Constants

Question types:

	TypeText     = "Text"
	TypeMultiple = "Multiple"
	TypeBoolean  = "Boolean"

Stored values vary in case ("text", "Boolean", "bool"); always compare
through Question.IsChoice rather than directly.
*/
package models
