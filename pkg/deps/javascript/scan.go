package javascript

import "strings"

// member locates one "key": value pair in raw JSON text.
type member struct {
	key   int // Offset of the key's opening quote
	value int // Offset of the first byte of the value
	end   int // Offset just past the value
}

// rootObject returns the offset just inside the top-level object, or -1.
func rootObject(text string) int {
	start := 0
	if strings.HasPrefix(text, bom) {
		start = len(bom)
	}
	i := skipSpace(text, start)
	if i < len(text) && text[i] == '{' {
		return i + 1
	}
	return -1
}

// findMember scans the members of the object whose body starts at lo and
// returns the first one named key. Nested objects are skipped whole, so
// only direct members match. The text is expected to be valid JSON.
func findMember(text string, lo int, key string) (member, bool) {
	if lo < 0 {
		return member{}, false
	}
	i := lo
	for {
		i = skipSpace(text, i)
		if i >= len(text) || text[i] != '"' {
			return member{}, false
		}
		k := i
		i = skipString(text, i)
		name := text[k+1 : max(k+1, i-1)]

		i = skipSpace(text, i)
		if i >= len(text) || text[i] != ':' {
			return member{}, false
		}
		v := skipSpace(text, i+1)
		i = skipValue(text, v)
		if name == key {
			return member{key: k, value: v, end: i}, true
		}

		i = skipSpace(text, i)
		if i >= len(text) || text[i] != ',' {
			return member{}, false
		}
		i++
	}
}

func skipSpace(text string, i int) int {
	for i < len(text) && strings.IndexByte(" \t\r\n", text[i]) >= 0 {
		i++
	}
	return i
}

// skipString returns the offset just past the string starting at i.
func skipString(text string, i int) int {
	for i++; i < len(text); i++ {
		switch text[i] {
		case '\\':
			i++
		case '"':
			return i + 1
		}
	}
	return len(text)
}

// skipValue returns the offset just past the value starting at i.
func skipValue(text string, i int) int {
	if i >= len(text) {
		return i
	}
	switch text[i] {
	case '"':
		return skipString(text, i)
	case '{', '[':
		depth := 0
		for i < len(text) {
			switch text[i] {
			case '"':
				i = skipString(text, i)
				continue
			case '{', '[':
				depth++
			case '}', ']':
				depth--
				if depth == 0 {
					return i + 1
				}
			}
			i++
		}
		return i
	default:
		for i < len(text) && strings.IndexByte(",}] \t\r\n", text[i]) < 0 {
			i++
		}
		return i
	}
}
