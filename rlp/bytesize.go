package rlp

// uintToBytes returns the shortest big-endian, no-leading-zero encoding of n,
// or the empty slice for n == 0. This is the byte codec of §4.1: the
// fundamental mapping between non-negative integers and canonical byte
// strings that every length prefix and every RLP-encoded integer is built
// from.
func uintToBytes(n uint64) []byte {
	if n == 0 {
		return nil
	}
	var buf [8]byte
	i := 8
	for n > 0 {
		i--
		buf[i] = byte(n)
		n >>= 8
	}
	return append([]byte(nil), buf[i:]...)
}

// bytesToUint is the left inverse of uintToBytes: it interprets b as a
// big-endian unsigned integer, returning 0 for the empty slice.
func bytesToUint(b []byte) uint64 {
	var n uint64
	for _, c := range b {
		n = n<<8 | uint64(c)
	}
	return n
}
