// Package main provides the program running a trained question - relation scorer. Given a
// question and candidate relations it prints the candidates best first. Given a questions
// file it prints the share of questions whose top scored relation is positive.
package main
