// Package toolbox implements the text transforms offered on the toolbox page:
// number base conversion, Base64 and the Caesar cipher.
//
// Every transform comes in two flavours. The lenient one never fails and
// reports unusable input with the NaN marker, which is what the interactive
// widgets display. The strict one returns a sentinel error and is used by the
// JSON API and the CLI.
//
// # Base Shifter
//
//	out, err := toolbox.Shift("255", 10, 16) // "ff", nil
//
//	bs := toolbox.NewBaseShifter()          // base 10 -> base 16
//	bs.Shift("zz")                          // "NaN"
//
// # Base64
//
//	enc := toolbox.EncodeBase64("hello")    // "aGVsbG8="
//	toolbox.DecodeBase64(enc)               // "hello"
//	toolbox.DecodeBase64("not-valid!!")     // "NaN"
//
// # Caesar Cipher
//
//	toolbox.CaesarShift("abc", 3)           // "def"
//	toolbox.NewCaesar().Encode("XYZ")       // "ABC"
//
// Configuration is always explicit: radices and the cipher shift are either
// passed per call or held in a value constructed by the caller.
package toolbox
