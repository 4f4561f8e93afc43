package paramgen

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// sentenceBreakSlack is how many columns of trailing words may be pushed to
// the next line so that a line ends at a sentence boundary instead.
const sentenceBreakSlack = 12

// wrapText splits text into lines of at most width columns. Lines are only
// broken between words; a single word wider than width gets a line of its own.
// Joining the result with single spaces yields strings.Fields(text) joined the same way.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	var line []string
	lineLen := 0

	for _, word := range words {
		wordLen := utf8.RuneCountInString(word)
		if len(line) == 0 {
			line, lineLen = []string{word}, wordLen
			continue
		}
		if lineLen+1+wordLen <= width {
			line = append(line, word)
			lineLen += 1 + wordLen
			continue
		}

		head, tail := splitAtSentence(line, width-wordLen-1)
		lines = append(lines, strings.Join(head, " "))
		line = append(tail, word)
		lineLen = wordsLen(line)
	}

	return append(lines, strings.Join(line, " "))
}

// splitAtSentence looks for the last sentence end in line and splits after it
// when the remaining words are short enough to move to the next line. room is
// the number of columns the moved words may occupy there. Without a suitable
// sentence end the whole line is returned as head.
func splitAtSentence(line []string, room int) (head, tail []string) {
	for i := len(line) - 2; i >= 0; i-- {
		if !endsSentence(line[i]) {
			continue
		}
		rest := line[i+1:]
		restLen := wordsLen(rest)
		if restLen > sentenceBreakSlack || restLen > room {
			break
		}
		return line[:i+1], append([]string(nil), rest...)
	}
	return line, nil
}

func endsSentence(word string) bool {
	word = strings.TrimRight(word, `"')`)
	return strings.HasSuffix(word, ".") || strings.HasSuffix(word, "!") || strings.HasSuffix(word, "?")
}

func wordsLen(words []string) int {
	if len(words) == 0 {
		return 0
	}
	n := len(words) - 1
	for _, w := range words {
		n += utf8.RuneCountInString(w)
	}
	return n
}

// normalizeDescription collapses whitespace, capitalizes the first letter and
// terminates the text with a period unless it already ends in punctuation.
func normalizeDescription(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return ""
	}
	text = capitalizeFirst(text)
	switch text[len(text)-1] {
	case '.', '!', '?', ':':
		return text
	}
	return text + "."
}

// capitalizeFirst upper-cases the first rune of s and leaves the rest untouched.
func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// titleCase upper-cases the first letter and every letter that follows a
// non-letter. Other letters keep their case, so "max_results" becomes
// "Max_Results" and "dateFormat" becomes "DateFormat".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) && !prevLetter {
			r = unicode.ToUpper(r)
		}
		prevLetter = unicode.IsLetter(r)
		b.WriteRune(r)
	}
	return b.String()
}
