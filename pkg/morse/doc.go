// Package morse translates text to and from a dot/dash signal encoding.
//
// A signal string is a sequence of tokens separated by single spaces.
// Tokens are written with '.' for a dot and '_' for a dash; Decode also
// accepts '*' and '-'. Words are separated by the "/" token:
//
//	Encode("abc def") == "._ _... _._. / _.. . .._."
//
// Units that have no translation are replaced by '#' in the output and
// reported through a *TranslationError, which also carries the partial
// result.
//
// Regional letters are enabled at build time with the norwegian or
// spanish build tag. The two tags cannot be combined.
package morse
