// Package scorer implements a relation scorer built from hashtrons.
//
// Filters slide over the question tokens, each with its own window width and dilation,
// and fire when a window together with the relation (or, with attention, with one of its
// parts) hits a learned cell. Hidden units read the bits of a fixed subset of filters.
// The score of a question - relation pair is the share of hidden units that fire, with
// the share of filters that fire as a tie breaker.
package scorer
