// Package casefile reads, writes, generates and runs YAML regression files
// for the katas.
//
// A case file is a list of inputs for one of the katas together with the
// result each input is expected to produce:
//
//	cases:
//	  - kata: digits
//	    number: 305
//	    want: {sum: 8, product: 0, absolute_difference: 8}
//	  - kata: stones
//	    total: 6
//	    steps: [3, 2]
//	    want_unvisited: 2
//	  - kata: digits
//	    number: 0
//	    want_error: invalid_argument
//
// Run evaluates every case against package kata and collects a Report.
// Generate builds random cases whose expectations come from the current
// implementation, which makes it suitable for recording regression fixtures.
package casefile
