// Package cipher implements the classical Caesar, Playfair and Vigenère ciphers
// over the uppercase A-Z alphabet.
//
// Ciphers are built through New, which validates and normalizes the key before
// anything is constructed. A constructed Cipher is immutable and safe for
// concurrent use. Digits in the input pass through unchanged.
package cipher
