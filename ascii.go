package desktopentry

import "unicode"

// ASCIIString is a string validated to contain only non-control ASCII
// characters. Use it to sanitize caller-supplied input before it is
// placed into entries; the model itself does not enforce this on
// construction.
type ASCIIString struct {
	value string
}

// NewASCIIString validates s. It fails with a *NotASCIIError carrying
// the first character that is not ASCII or is a control character.
func NewASCIIString(s string) (ASCIIString, error) {
	for _, r := range s {
		if r > unicode.MaxASCII || unicode.IsControl(r) {
			return ASCIIString{}, &NotASCIIError{Char: r}
		}
	}

	return ASCIIString{value: s}, nil
}

func (s ASCIIString) String() string {
	return s.value
}
