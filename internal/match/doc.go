// Package match finds the closest known name to a misspelled one. It backs
// the "did you mean" hints on unknown attribute options and type names.
//
// Names are compared after NormalizeIdent, so "OrderID", "order_id" and
// "orderId" are the same name, and ranked by normalized Levenshtein
// similarity.
package match
