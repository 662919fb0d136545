package format

import "strings"

// Wrap splits text into lines of at most max characters. Explicit newlines
// delimit paragraphs; each paragraph is trimmed and broken at the last space
// that fits, or hard-broken when a single word exceeds max. A blank paragraph
// yields one empty line so paragraph spacing survives. No characters are
// dropped beyond the trimmed whitespace.
func Wrap(text string, max int) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		remaining := strings.TrimSpace(paragraph)
		if remaining == "" {
			lines = append(lines, "")
			continue
		}
		for {
			runes := []rune(remaining)
			if len(runes) <= max {
				lines = append(lines, remaining)
				break
			}
			brk := lastSpaceAtOrBefore(runes, max)
			if brk < 0 {
				lines = append(lines, string(runes[:max]))
				remaining = strings.TrimSpace(string(runes[max:]))
			} else {
				lines = append(lines, strings.TrimSpace(string(runes[:brk])))
				remaining = strings.TrimSpace(string(runes[brk+1:]))
			}
			if remaining == "" {
				break
			}
		}
	}
	return lines
}

func lastSpaceAtOrBefore(runes []rune, max int) int {
	for i := max; i >= 0; i-- {
		if runes[i] == ' ' {
			return i
		}
	}
	return -1
}

// Center pads line with spaces on both sides to exactly width characters,
// giving any odd remainder to the right side. Lines at or beyond width are
// truncated to exactly width.
func Center(line string, width int) string {
	length := runeLen(line)
	if length >= width {
		return truncate(line, width)
	}
	left := (width - length) / 2
	right := width - length - left
	return strings.Repeat(" ", left) + line + strings.Repeat(" ", right)
}

func truncate(line string, width int) string {
	runes := []rune(line)
	if len(runes) <= width {
		return line
	}
	return string(runes[:width])
}

func runeLen(s string) int {
	return len([]rune(s))
}
