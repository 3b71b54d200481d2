package venum

import "strings"

// MaxNameStorage bounds the processed-name storage of a single definition.
const MaxNameStorage = 1 << 30

// nameEnders are the symbols that end the name portion of a raw declaration
// such as "A", "A = 42", "A=42" or "A = Other". End of text ends a name as well.
const nameEnders = "= \t\n"

// endsName reports whether c terminates the name portion of a declaration.
func endsName(c byte) bool {
	return strings.IndexByte(nameEnders, c) >= 0
}

// nameEnd returns the length of the name portion of raw.
func nameEnd(raw string) int {
	if i := strings.IndexAny(raw, nameEnders); i >= 0 {
		return i
	}
	return len(raw)
}

// TrimName returns the name portion of a raw declaration, dropping any
// trailing "= value-expression" and the whitespace around it.
func TrimName(raw string) string {
	return raw[:nameEnd(raw)]
}

// ProcessNames trims every raw declaration to its name. All returned strings
// share one backing allocation sized to the sum of the raw lengths.
func ProcessNames(raw []string) ([]string, error) {
	return processNames("", raw, MaxNameStorage)
}

func processNames(enum string, raw []string, limit uint64) ([]string, error) {
	var need uint64
	for _, r := range raw {
		need += uint64(len(r))
		if need > limit {
			return nil, &AllocationError{Enum: enum, Bytes: need, Limit: limit}
		}
	}
	var b strings.Builder
	b.Grow(int(need))
	ends := make([]int, len(raw))
	for i, r := range raw {
		b.WriteString(r[:nameEnd(r)])
		ends[i] = b.Len()
	}
	storage := b.String()
	names := make([]string, len(raw))
	start := 0
	for i, end := range ends {
		names[i] = storage[start:end]
		start = end
	}
	return names, nil
}

// namesMatch reports whether the name portion of raw equals ref exactly.
func namesMatch(raw, ref string) bool {
	for i := 0; ; i++ {
		if i == len(raw) || endsName(raw[i]) {
			return i == len(ref)
		}
		if i == len(ref) || raw[i] != ref[i] {
			return false
		}
	}
}

// namesMatchNocase is namesMatch with ASCII letters folded. Bytes outside
// A-Z are compared as is.
func namesMatchNocase(raw, ref string) bool {
	for i := 0; ; i++ {
		if i == len(raw) || endsName(raw[i]) {
			return i == len(ref)
		}
		if i == len(ref) || toLowerASCII(raw[i]) != toLowerASCII(ref[i]) {
			return false
		}
	}
}

func toLowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
