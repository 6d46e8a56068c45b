package edit

import "strings"

// MaskRune replaces every rune of a password.
const MaskRune = '*'

// Mask hides text behind one MaskRune per rune.
func Mask(text string) string {
	return strings.Repeat(string(MaskRune), runeLen(text))
}

// MaskIf masks text when password is set.
func MaskIf(password bool, text string) string {
	if password {
		return Mask(text)
	}
	return text
}
