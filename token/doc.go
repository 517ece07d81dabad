// Package token splits JSON text into tokens carrying their positions.
//
// [Tokenize] validates the lexical grammar only: string escapes and UTF-8,
// number syntax, the three keywords and punctuation.  Structure is checked
// by package parse.
package token
