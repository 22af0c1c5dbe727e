// Package calculation turns per board solver statistics into averages.
//
// BuildAggregateRow parses one solver output, keeps the lines whose board
// matches a texture filter and averages their statistics. BuildAllVariants
// repeats that for several bet sizes of the same situation and refuses to
// report when the sizes were not averaged over identical boards.
package calculation
