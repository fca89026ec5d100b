// Package hash implements the fast modular hash used to key relation scorer features
package hash

// Hash mixes n with the salt s and reduces the result into the range 0 to max-1
func Hash(n uint32, s uint32, max uint32) uint32 {
	// mixing stage, mix input with salt using subtraction
	var m = uint32(n) - uint32(s)

	// hashing stage, use xor shift with prime coefficients
	m ^= m << 2
	m ^= m << 3
	m ^= m >> 5
	m ^= m >> 7
	m ^= m << 11
	m ^= m << 13
	m ^= m >> 17
	m ^= m << 19

	// mixing stage 2, mix input with salt using addition
	m += s

	// modular stage, the multiply shift trick by Daniel Lemire
	// https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction/
	return uint32((uint64(m) * uint64(max)) >> 32)
}

// full is the widest reduction range, output is 0 to 2^32-2
const full = ^uint32(0)

// StringHash hashes the bytes of str under the salt. Order of bytes matters.
func StringHash(salt uint32, str string) uint32 {
	var h = Hash(uint32(len(str)), salt, full)
	for i := 0; i < len(str); i++ {
		h = Hash(h+uint32(str[i]), salt^uint32(i), full)
	}
	return h
}

// StringsHash hashes a sequence of strings under the salt. Order of strings matters,
// and ["ab"] hashes differently from ["a", "b"].
func StringsHash(salt uint32, strs []string) uint32 {
	var h = Hash(uint32(len(strs)), salt, full)
	for i, s := range strs {
		h = Hash(h^StringHash(salt, s), salt+uint32(i)+1, full)
	}
	return h
}

// StringsHash64 hashes a sequence of strings into 64 bits using two independent salts
func StringsHash64(strs []string) uint64 {
	return uint64(StringsHash(0x9E3779B9, strs))<<32 | uint64(StringsHash(0x7F4A7C15, strs))
}

// Combine mixes two features into one, the order of a and b matters
func Combine(a, b uint32) uint32 {
	return Hash(a^Hash(b, 0x85EBCA6B, full), 0xC2B2AE35, full)
}
