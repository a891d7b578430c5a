package rlp

// Decode parses a single RLP item from buf and returns its Item value
// ([]byte for a string, []Item for a list). It fails with ErrExtraBytes if
// buf has bytes left over after the top-level item.
func Decode(buf []byte) (Item, error) {
	item, rest, err := decodeOne(buf)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, ErrExtraBytes
	}
	return item, nil
}

// decodeOne decodes the first item in buf and returns it along with the
// unconsumed remainder, recursing into list children via Split.
func decodeOne(buf []byte) (Item, []byte, error) {
	k, content, rest, err := Split(buf)
	if err != nil {
		return nil, nil, err
	}
	if k == String {
		return Item(content), rest, nil
	}
	items := make([]Item, 0)
	remaining := content
	for len(remaining) > 0 {
		var it Item
		it, remaining, err = decodeOne(remaining)
		if err != nil {
			return nil, nil, err
		}
		items = append(items, it)
	}
	return Item(items), rest, nil
}

// DecodeUint decodes a single RLP item and reinterprets its bytes as a
// big-endian unsigned integer; the caller is responsible for knowing that
// this position in the schema is integer-typed (§9's "integers vs.
// bytestrings" footgun).
func DecodeUint(buf []byte) (uint64, error) {
	item, err := Decode(buf)
	if err != nil {
		return 0, err
	}
	b, ok := item.([]byte)
	if !ok {
		return 0, ErrExpectedString
	}
	return bytesToUint(b), nil
}
