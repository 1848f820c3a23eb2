// Package nlp implements the rule-based natural-language command
// interpreter: ordered pattern rules for intent detection plus per-intent
// entity extraction (title cleanup, date/time, importance, task
// references).
package nlp
