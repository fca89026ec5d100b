// Package relations implements the question - relation examples dataset.
// It tokenizes questions with [mid|text] mentions, reads positive and negative
// relation examples from a tab separated file, reads entity category maps and
// splits off a shuffled development batch.
package relations
