// Package bcd decodes and encodes the packed binary-coded-decimal bytes used by RTC time registers.
//
// A packed byte holds the units digit in the low nibble and the tens digit in some subset of the high nibble. Which
// high bits belong to the tens digit depends on the register, so decoding always takes a tens mask; bits outside the
// mask are reserved or flags and are ignored.
//
// Decoded values are not range checked. A corrupted register can produce values up to 79 for minutes or 39 for hours.
package bcd

const (
	Units       = 0x0F // units digit, every register
	SecondsTens = 0x70 // bits 4-6; bit 7 is a flag on some chips
	MinutesTens = 0x70 // bits 4-6; bit 7 reserved
	HoursTens   = 0x30 // bits 4-5 in 24-hour mode; bits 6-7 reserved
)

// Decode converts b to binary, taking the tens digit from the bits selected by tensMask (which must lie in the high
// nibble) and the units digit from the low nibble.
func Decode(b, tensMask byte) uint8 {
	tens := (b & tensMask) >> 4
	units := b & Units
	return tens*10 + units
}

// Seconds decodes a seconds register.
func Seconds(b byte) uint8 {
	return Decode(b, SecondsTens)
}

// Minutes decodes a minutes register.
func Minutes(b byte) uint8 {
	return Decode(b, MinutesTens)
}

// Hours decodes a 24-hour mode hours register.
func Hours(b byte) uint8 {
	return Decode(b, HoursTens)
}

// Encode converts v (0-99) to packed BCD.
func Encode(v uint8) byte {
	return v/10<<4 | v%10
}
