package gen

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// acronyms are kept upper-cased in generated identifiers.
var acronyms = map[string]bool{
	"ACL": true, "API": true, "CPU": true, "CSS": true, "DNS": true,
	"EOF": true, "GUID": true, "HTML": true, "HTTP": true, "HTTPS": true,
	"ID": true, "IP": true, "JSON": true, "RPC": true, "SQL": true,
	"SSH": true, "TCP": true, "TLS": true, "TTL": true, "UDP": true,
	"UI": true, "URI": true, "URL": true, "UTF8": true, "UUID": true,
	"XML": true,
}

// pascal converts a constant name to a Go identifier fragment.
//
//	pascal("RED") => "Red"
//	pascal("DARK_BLUE") => "DarkBlue"
//	pascal("darkBlue") => "DarkBlue"
//	pascal("HTTP_ERROR") => "HTTPError"
func pascal(s string) string {
	var (
		b     strings.Builder
		lower = cases.Title(language.Und)
		keep  = cases.Title(language.Und, cases.NoLower)
	)
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	for _, w := range words {
		switch {
		case acronyms[strings.ToUpper(w)]:
			b.WriteString(strings.ToUpper(w))
		case isUpper(w):
			b.WriteString(lower.String(w))
		default:
			b.WriteString(keep.String(w))
		}
	}
	return b.String()
}

// isUpper reports whether s has no lower-case letters.
func isUpper(s string) bool {
	return strings.IndexFunc(s, unicode.IsLower) < 0
}

// snake converts a Go identifier to snake case.
//
//	snake("Color") => "color"
//	snake("HTTPStatus") => "http_status"
//	snake("UserIDs") => "user_ids"
func snake(s string) string {
	var (
		b     strings.Builder
		runes = []rune(s)
	)
	for i, r := range runes {
		if !unicode.IsUpper(r) {
			b.WriteRune(r)
			continue
		}
		if i > 0 && runes[i-1] != '_' {
			prev := runes[i-1]
			switch {
			case unicode.IsLower(prev) || unicode.IsDigit(prev):
				b.WriteByte('_')
			case unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) && !pluralS(runes, i+1):
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// pluralS reports whether runes[i] is the plural "s" closing an acronym.
func pluralS(runes []rune, i int) bool {
	return runes[i] == 's' && (i+1 == len(runes) || !unicode.IsLower(runes[i+1]))
}

// plural returns the plural form of a type name, for doc comments.
func plural(s string) string {
	return inflect.Pluralize(s)
}

// unexport lower-cases the leading upper-case run of a Go identifier,
// keeping the last letter of an acronym that starts the next word.
//
//	unexport("Color") => "color"
//	unexport("HTTPStatus") => "httpStatus"
//	unexport("ID") => "id"
func unexport(s string) string {
	runes := []rune(s)
	n := 0
	for n < len(runes) && unicode.IsUpper(runes[n]) {
		n++
	}
	if n > 1 && n < len(runes) && unicode.IsLower(runes[n]) {
		n--
	}
	for i := 0; i < n; i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}

// receiver returns the receiver name of a type's methods.
func receiver(s string) string {
	r, _ := utf8.DecodeRuneInString(s)
	name := string(unicode.ToLower(r))
	// Reserved for the parameters and locals of the generated methods.
	switch name {
	case "n", "o", "s", "v":
		return "e"
	}
	return name
}
