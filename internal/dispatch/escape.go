package dispatch

import "strings"

// markdownV2Reserved lists the characters the chat API rejects unescaped in
// MarkdownV2 text.
const markdownV2Reserved = "_*[]()~`>#+-=|{}.!"

// EscapeMarkdownV2 prefixes every reserved character in text with a backslash.
func EscapeMarkdownV2(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		if strings.ContainsRune(markdownV2Reserved, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}

	return b.String()
}
