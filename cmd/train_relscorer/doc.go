// Package main provides the program training a question - relation scorer from a file of
// labeled question / relation pairs. The trained model is stored as a .json.lzw file.
//
// Usage:
//
//	train_relscorer [flags] <questions file>
package main
