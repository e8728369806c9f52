// Package input turns the textual arguments of the katas command-line tools
// into the typed values package kata works with.
//
// Every failure wraps ErrParse so callers can tell malformed text apart from
// values the algorithms reject.
package input
