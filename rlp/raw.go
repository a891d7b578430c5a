package rlp

// Kind classifies the outermost shape of an RLP item as seen by Split,
// without decoding its content.
type Kind int

const (
	// String is the kind of any byte-string item, including the ones
	// produced by the integer-prefix family (§4.2.1): by the time Split
	// returns, an integer-prefixed item has already been normalized to its
	// canonical to_bytes() form, so callers never see a third "Integer"
	// kind — matching §4.2's "decode always yields Bytes/List".
	String Kind = iota
	// List is the kind of any list item; its Split content is the
	// concatenated encodings of its children.
	List
)

// Split decodes the kind and content of the first RLP item in b, returning
// the bytes left over after it. For a String item, content is the decoded
// byte string. For a List item, content is the concatenated RLP encodings
// of the list's children (not yet recursively decoded) — callers that need
// the children typically pass content to CountValues and then to Split
// again, peeling off one child at a time; this is what the trie engine's
// node decoder (§4.5) does to avoid materializing every branch slot eagerly.
func Split(b []byte) (k Kind, content, rest []byte, err error) {
	if len(b) == 0 {
		return 0, nil, nil, ErrTruncated
	}
	f := b[0]
	switch {
	case f < intLiteralBound:
		return String, literalContent(f), b[1:], nil
	case f < intShortBound:
		payload, after, err := splitPayload(b[1:], int(f-intShortBase))
		if err != nil {
			return 0, nil, nil, err
		}
		return String, normalizeInt(payload), after, nil
	case f < intLongBound:
		payload, after, err := splitLongPayload(b[1:], int(f-intLongBase))
		if err != nil {
			return 0, nil, nil, err
		}
		return String, normalizeInt(payload), after, nil
	case f < strShortBound:
		payload, after, err := splitPayload(b[1:], int(f-strShortBase))
		if err != nil {
			return 0, nil, nil, err
		}
		return String, payload, after, nil
	case f < strLongBound:
		payload, after, err := splitLongPayload(b[1:], int(f-strLongBase))
		if err != nil {
			return 0, nil, nil, err
		}
		return String, payload, after, nil
	case f < listShortBound:
		content, after, err := consumeChildren(b[1:], int(f-listShortBase))
		if err != nil {
			return 0, nil, nil, err
		}
		return List, content, after, nil
	case f < listLongBound:
		header, afterHeader, err := splitPayload(b[1:], int(f-listLongBase))
		if err != nil {
			return 0, nil, nil, err
		}
		content, after, err := consumeChildren(afterHeader, int(bytesToUint(header)))
		if err != nil {
			return 0, nil, nil, err
		}
		return List, content, after, nil
	default:
		return 0, nil, nil, ErrUnsupportedPrefix
	}
}

// SplitString is Split, failing with ErrExpectedString if the next item is
// a list.
func SplitString(b []byte) (content, rest []byte, err error) {
	k, content, rest, err := Split(b)
	if err != nil {
		return nil, nil, err
	}
	if k != String {
		return nil, nil, ErrExpectedString
	}
	return content, rest, nil
}

// SplitList is Split, failing with ErrExpectedList if the next item is a
// string.
func SplitList(b []byte) (content, rest []byte, err error) {
	k, content, rest, err := Split(b)
	if err != nil {
		return nil, nil, err
	}
	if k != List {
		return nil, nil, ErrExpectedList
	}
	return content, rest, nil
}

// CountValues reports how many top-level items are encoded back-to-back in
// b. The trie engine's node decoder uses this to tell a 2-element
// leaf/extension node apart from a 17-element branch node without decoding
// every child.
func CountValues(b []byte) (int, error) {
	var n int
	for len(b) > 0 {
		_, _, rest, err := Split(b)
		if err != nil {
			return 0, err
		}
		b = rest
		n++
	}
	return n, nil
}

// splitPayload slices off exactly n bytes, failing with ErrTruncated if b is
// shorter.
func splitPayload(b []byte, n int) (payload, rest []byte, err error) {
	if n < 0 || n > len(b) {
		return nil, nil, ErrTruncated
	}
	return b[:n], b[n:], nil
}

// splitLongPayload reads an n-byte length header, then slices off that many
// bytes of payload.
func splitLongPayload(b []byte, headerLen int) (payload, rest []byte, err error) {
	header, afterHeader, err := splitPayload(b, headerLen)
	if err != nil {
		return nil, nil, err
	}
	return splitPayload(afterHeader, int(bytesToUint(header)))
}

// consumeChildren walks exactly count self-delimiting items out of b and
// returns the span they occupy together with whatever follows.
func consumeChildren(b []byte, count int) (content, rest []byte, err error) {
	if count < 0 {
		return nil, nil, ErrTruncated
	}
	remaining := b
	for i := 0; i < count; i++ {
		_, _, next, err := Split(remaining)
		if err != nil {
			return nil, nil, err
		}
		remaining = next
	}
	consumed := len(b) - len(remaining)
	return b[:consumed], remaining, nil
}

// literalContent is the decoded Bytes value of a single-byte literal prefix
// (f < 24): empty for f == 0 (to_bytes(0) == ""), else the single byte f.
func literalContent(f byte) []byte {
	if f == 0 {
		return nil
	}
	return []byte{f}
}

// normalizeInt collapses the payload of an integer-prefixed item to its
// canonical to_bytes() form, so that e.g. a non-canonical (leading-zero)
// payload decodes to the same value a canonical encoder would have produced.
func normalizeInt(payload []byte) []byte {
	return uintToBytes(bytesToUint(payload))
}
