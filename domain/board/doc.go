// Package board models flops and classifies their texture.
//
// A Board holds three distinct cards in ascending rank order. Four
// classifiers bucket it: Height (broadway count), SuitPattern (monotone,
// twotone, rainbow), Pairing (unpaired, paired, trips) and Connectedness
// (straight, open ended draw, gutshot, disconnected, ace high dry). Each
// classifier is a total function returning exactly one value.
//
// A Filter holds one Set per dimension. Empty sets are wildcards; a board
// matches when it satisfies at least one value of every non-empty set.
package board
