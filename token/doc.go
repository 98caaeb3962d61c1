// Package token provides tokenization of HOCON documents.
//
// [Tokenize] turns bytes into a flat sequence of [Token]s. Comments are
// dropped, line breaks are kept as [TNewline] tokens and each token records
// the horizontal whitespace which preceded it so the parser can rejoin
// unquoted text exactly as written.
//
// [Quote] and [NeedsQuote] support encoding strings back to HOCON.
package token
