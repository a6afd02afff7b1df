package editor

import "strings"

// SplitLines converts textarea-style raw input into the stored sequence.
// The split is verbatim: blank lines are kept so the text round-trips
// exactly, and the skins are responsible for skipping empty entries.
func SplitLines(raw string) []string {
	return strings.Split(raw, "\n")
}

// JoinLines is the inverse of SplitLines, producing the editable text
// form of a list-valued field.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
