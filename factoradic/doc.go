// Package factoradic converts integers to and from the factorial number
// system (factoradic), the positional numeral system in which the place
// value of position i is i!.
//
// Representation rules:
//
//   - Digits are ordered most-significant first.
//   - The digit at 1-based position i, counted from the least significant
//     end, lies in the range [0, i].
//   - Zero is written as [0]; for any other value the leading digit is
//     non-zero.
//   - The always-zero 0! place is never included.
//
// Operations:
//
//   - Digits    - big integer to digit slice.
//   - Value     - digit slice to big integer (accepts leading zeros).
//   - Factorial - n! as a big integer.
//
// All values are arbitrary-precision (*big.Int): factorials overflow int64
// already at 21!, and factoradic digit strings are the backbone of the
// Lehmer codecs in package lehmer, which must stay exact at any degree.
//
// Use this package when you need to rank or unrank sequences in factorial
// base, or as the numeric layer beneath permutation codes.
package factoradic
