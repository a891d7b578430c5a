package rlp

import "errors"

var (
	// ErrEncodeNegative is returned when a negative integer is passed to Encode.
	ErrEncodeNegative = errors.New("rlp: cannot encode negative integer")

	// ErrUnsupportedPrefix is returned when Decode sees a leading byte that
	// does not fall into any of the defined prefix ranges (byte >= 192 under
	// this codec's table, since this codec has no tag range above lists).
	ErrUnsupportedPrefix = errors.New("rlp: unsupported prefix byte")

	// ErrTruncated is returned when Decode runs off the end of the input
	// buffer while reading a header or a payload.
	ErrTruncated = errors.New("rlp: value truncated")

	// ErrExtraBytes is returned by Decode when the buffer has unread
	// bytes left over after a top-level item has been fully decoded.
	ErrExtraBytes = errors.New("rlp: extra bytes after value")

	// ErrExpectedString is returned by SplitString when the next item is a
	// list rather than a bytestring.
	ErrExpectedString = errors.New("rlp: expected string, got list")

	// ErrExpectedList is returned by SplitList when the next item is a
	// bytestring rather than a list.
	ErrExpectedList = errors.New("rlp: expected list, got string")

	// ErrUnsupportedType is returned by Encode when given a Go value that is
	// not an int/int64/uint/uint64, []byte, string, or a []Item/[]interface{}
	// list of encodable items.
	ErrUnsupportedType = errors.New("rlp: unsupported type for encoding")
)
