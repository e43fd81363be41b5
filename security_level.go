package seckey

import "fmt"

// SecurityLevel selects the scrypt cost parameters used to derive the
// symmetric encryption key from a password. The byte value packs the cost
// exponents: bits 7-5 hold nExp, bits 4-2 hold rExp and bits 1-0 hold pExp,
// resolving to N = 1<<(nExp+14), r = 1<<(rExp+3), p = 1<<pExp.
//
// Two levels are equal if their byte values are equal, so a custom level
// with the same flags as a named one compares equal to it. Every byte value
// is a valid, if possibly impractical, security level.
type SecurityLevel byte

const (
	// SecurityLevelDefault resolves to N=32768, r=16, p=1.
	SecurityLevelDefault SecurityLevel = 0b0010_0100
	// SecurityLevelHigh resolves to N=65536, r=16, p=1.
	SecurityLevelHigh SecurityLevel = 0b0100_0100
	// SecurityLevelParanoid resolves to N=131072, r=16, p=1.
	SecurityLevelParanoid SecurityLevel = 0b0110_0100
)

// namedSecurityLevels is checked linearly when naming a level.
var namedSecurityLevels = []struct {
	level SecurityLevel
	name  string
}{
	{SecurityLevelDefault, "default"},
	{SecurityLevelHigh, "high"},
	{SecurityLevelParanoid, "paranoid"},
}

// Flags returns the one-byte encoding of this security level.
func (sl SecurityLevel) Flags() byte {
	return byte(sl)
}

// Params resolves the scrypt cost parameters packed into this security level.
func (sl SecurityLevel) Params() (N, r, p int) {
	nExp := int(sl>>5) & 0x07
	rExp := int(sl>>2) & 0x07
	pExp := int(sl) & 0x03
	return 1 << (nExp + 14), 1 << (rExp + 3), 1 << pExp
}

// String returns the name of the security level.
func (sl SecurityLevel) String() string {
	for _, nl := range namedSecurityLevels {
		if nl.level == sl {
			return nl.name
		}
	}
	return fmt.Sprintf("custom(0x%02x)", byte(sl))
}
