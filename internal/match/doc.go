// Package match provides fuzzy name matching used to suggest a declared
// property when input data carries an unknown key.
//
// Names are normalized (case-folded, separators stripped) before their
// Levenshtein distance is compared, so "first_name", "firstName" and
// "FirstName" are considered identical.
package match
