package types

import "regexp"

// addressPattern matches the shape of an EVM account: "0x" followed by exactly
// 40 hexadecimal characters. The checksum casing is not verified.
var addressPattern = regexp.MustCompile(`0x[0-9a-fA-F]{40}`)

// FindAddress returns the first address-shaped token found in text, exactly
// as it appears there.
//
// A longer hex run such as a transaction hash still yields its leading
// 40 characters, matching what a plain pattern scan would report.
func FindAddress(text string) (string, bool) {
	match := addressPattern.FindString(text)
	return match, match != ""
}
