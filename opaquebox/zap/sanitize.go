package zap

import "strings"

// controlCharReplacer escapes characters that would let a message or string
// field forge extra log lines in the console encoder (CWE-117). Boxed values
// rendered through debug formatting can contain arbitrary text.
var controlCharReplacer = strings.NewReplacer(
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

func sanitizeString(s string) string {
	return controlCharReplacer.Replace(s)
}
