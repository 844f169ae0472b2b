package desktopentry

import "strings"

// Locale is the locale qualifier of a content entry, following the
// `lang_COUNTRY.ENCODING@MODIFIER` syntax of the desktop-entry
// specification. All sub-tags except Lang are optional and empty when
// absent.
//
// Two locales are never compared structurally; matching always goes
// through a LocaleMatcher so callers control which sub-tags are
// significant.
type Locale struct {
	Lang     string
	Country  string
	Encoding string
	Modifier string
}

// ParseLocale splits a raw locale tag into its sub-tags. The modifier is
// everything after the first '@', the encoding everything after the first
// '.' before that, the country everything after the first '_' before
// that. Any string free of brackets is a well-formed tag, so ParseLocale
// cannot fail.
func ParseLocale(s string) Locale {
	var l Locale

	if i := strings.Index(s, "@"); i >= 0 {
		l.Modifier = s[i+1:]
		s = s[:i]
	}
	if i := strings.Index(s, "."); i >= 0 {
		l.Encoding = s[i+1:]
		s = s[:i]
	}
	if i := strings.Index(s, "_"); i >= 0 {
		l.Country = s[i+1:]
		s = s[:i]
	}
	l.Lang = s

	return l
}

// String renders the locale in entry-key form. The country is written
// upper-cased.
func (l Locale) String() string {
	var sb strings.Builder
	sb.WriteString(l.Lang)
	if l.Country != "" {
		sb.WriteByte('_')
		sb.WriteString(strings.ToUpper(l.Country))
	}
	if l.Encoding != "" {
		sb.WriteByte('.')
		sb.WriteString(l.Encoding)
	}
	if l.Modifier != "" {
		sb.WriteByte('@')
		sb.WriteString(l.Modifier)
	}

	return sb.String()
}

// LocaleMatcher is the significance mask for locale-aware lookups: a
// reference locale plus one toggle per optional sub-tag. Language is
// always significant. Construct one per query, the zero toggles mean
// "language only".
type LocaleMatcher struct {
	Locale   Locale
	Country  bool
	Encoding bool
	Modifier bool
}

// Matches reports whether an entry's locale agrees with the reference
// locale on the language and on every significant sub-tag. A nil locale
// always matches: an unlocalized entry satisfies any locale query, which
// models the desktop-entry fallback to the plain key.
//
// Country is compared case-insensitively since it is upper-cased on
// output; the other sub-tags are compared exactly.
func (m LocaleMatcher) Matches(l *Locale) bool {
	if l == nil {
		return true
	}
	if l.Lang != m.Locale.Lang {
		return false
	}
	if m.Country && !strings.EqualFold(l.Country, m.Locale.Country) {
		return false
	}
	if m.Encoding && l.Encoding != m.Locale.Encoding {
		return false
	}
	if m.Modifier && l.Modifier != m.Locale.Modifier {
		return false
	}

	return true
}
