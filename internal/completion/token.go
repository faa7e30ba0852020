package completion

import "strings"

// wordDelimiters are the characters that terminate the word being completed.
const wordDelimiters = " ,\n);(."

// LastWord returns the in-progress word from the text before the cursor: the
// run of characters after the rightmost delimiter, or the whole text when no
// delimiter occurs. An empty result means the cursor is not on a word.
func LastWord(before string) string {
	if i := strings.LastIndexAny(before, wordDelimiters); i >= 0 {
		return before[i+1:]
	}
	return before
}
