// Package token turns a single whitespace-delimited word into a typed command.
//
// Tokenize is a pure function: it has no state and no side effects. A word
// is first tried as a float64 literal (scientific notation, leading sign,
// inf and nan are accepted). Otherwise it is split on ':' and matched
// against a fixed verb table.
//
// Verb grammar:
//
//	+ - * / % pow ^                 binary operators
//	neg inv abs sq sqrt exp ln ...  unary operators
//	pi e c h h_bar                  constants
//	sum prod mean stdev min max     whole-stack reductions
//	swap clear                      stack edits
//	cyc[:n] del[:n] get[:n] cpy[:n] stack edits with optional count/index
//	insert:n:v                      insert v at index n
//	undo[:n] redo[:n]               checkpoint rewind/advance
//	new:s goto:s rm:s reset         session management
//	sess hist hist_clear help       listings
//	quit exit                       stop the input loop
//
// Anything else, including a verb with a malformed numeric suffix such as
// "cyc:abc", yields a KindInvalid command carrying the reason.
package token
