// Package trainer provides high-level training orchestration for relation scorers.
// It splits examples into training data and a development batch, dispatches them to a
// Learner, and offers the unit training, evaluation and epoch loop helpers learners use.
package trainer
