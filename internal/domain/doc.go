// Package domain resolves wine-producer names to winery records and turns those
// records into the producer descriptions shown on a wine list.
//
// # Producer Names
//
// Producer names arrive exactly as they were typed into the wine list export:
// mixed case, trailing asterisks marking house selections, parenthesised province
// codes, doubled spaces. For example:
//
//	"Feudi Del Pisciotto*"      → FEUDI DEL PISCIOTTO
//	"Tenute di Giulio (CB)"     → TENUTE DI GIULIO CB
//	"  ippolito   1845 "        → IPPOLITO 1845
//
// Every comparison happens on the normalized form (see [Normalize]): uppercase,
// trimmed, "*", "(" and ")" removed, whitespace runs collapsed to one space.
// Normalization is idempotent.
//
// # Match Precedence
//
// [Table.Resolve] tries an exact key lookup first and then scans the table in
// catalog order. For each entry the strategies run in a fixed sequence and the
// first entry that satisfies any of them wins; there is no scoring:
//
//	normalized   key == query
//	containment  key contains query, or query contains key
//	word_overlap significant words (more than 2 characters) of the query that
//	             overlap a key word by substring, counted; a match needs
//	             count >= 1 and count >= min(len(query words), 2)
//	alias        any alias equals, contains, or is contained in the query
//
// Because the scan stops at the first hit, catalog order is part of the
// contract: an earlier entry shadows a later one for ambiguous queries.
//
// # Descriptions
//
// [Describe] joins the populated fields of a record into sentences in a fixed
// order (location, history, philosophy, hectares, grapes, notable wines, notes).
// A record with none of them has no description.
package domain
