// Package kata implements three small, independent integer and string
// exercises as pure functions.
//
// Components:
//
// Digit analysis:
//   - Analyze decomposes a positive integer into its decimal digits and
//     reports their sum, their product and the absolute difference of the two
//   - DigitsOf returns the decomposition itself, least significant digit first
//
// Pangram checking:
//   - IsPangram reports whether a string contains every letter 'a'..'z',
//     ignoring case
//   - MissingLetters lists the letters a string lacks
//
// Stone visiting:
//   - CountUnvisited marks every multiple of each step size within 1..N and
//     counts the positions no step ever reaches
//   - CountUnvisitedBirds does the same while checking a redundant bird count
//   - Visited exposes the marking sieve
//
// Every function is stateless and safe to call concurrently. Invalid input is
// rejected with an error matching ErrInvalidArgument; nothing in this package
// prints or logs.
package kata
