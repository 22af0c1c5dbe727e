// Package poker implements the card primitives used to describe flops:
// ranks, suits and cards, together with their single character codes.
//
// # Core Types
//
// Rank: one of thirteen ordered values from Two to Ace. Named subsets
// (broadway, middling, low, wheel) drive board texture classification.
//
// Suit: one of four unordered values.
//
// Card: a rank and suit pair. Cards compare by rank; Distance measures the
// gap between two ranks.
//
// # Parsing
//
// ParseRank, ParseSuit and ParseCard accept the canonical codes ("A", "s",
// "As") and report malformed input as a *ParseError naming the offending
// token.
package poker
