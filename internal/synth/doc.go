// Package synth derives proposal content from a free-text call transcript.
//
// Synthesis runs in three steps:
//
//  1. Fact extraction: the first dollar amount becomes the budget, the first
//     "<n> weeks|months" phrase (or a Q1-Q4 token) becomes the timeline.
//  2. Classification: keyword sets are tested in the fixed order
//     AI, MOBILE, ENTERPRISE, WEB; no match yields GENERAL.
//  3. Template fill: the category's markdown template receives the facts,
//     the voice ID and the proposal date.
//
// Every step has a fallback, so Synthesize never fails. The only errors in
// this package come from constructing a Synthesizer over custom templates.
package synth
