package trie

import "fmt"

// MissingNodeError is returned by node resolution when a referenced trie
// node is absent from the store. It carries enough context (path and hash)
// for a caller to tell which branch of the trie is unreachable.
type MissingNodeError struct {
	NodeHash [32]byte // hash of the missing node
	Path     []byte   // hex-nibble path from the root to the missing node
	err      error    // wrapped store error, if any
}

func (err *MissingNodeError) Error() string {
	if err.err != nil {
		return fmt.Sprintf("missing trie node %x (path %x): %v", err.NodeHash, err.Path, err.err)
	}
	return fmt.Sprintf("missing trie node %x (path %x)", err.NodeHash, err.Path)
}

func (err *MissingNodeError) Unwrap() error { return err.err }

// BadNibbleError is returned by the nibble-path codec when a compact-encoded
// byte string carries a flag value outside {0,1,2,3} (§4.4).
type BadNibbleError struct {
	Flag byte
}

func (err *BadNibbleError) Error() string {
	return fmt.Sprintf("invalid nibble-path flag byte %d", err.Flag)
}

// TypeMismatchError is returned when a decoded node's RLP shape does not
// match any of the three valid node encodings (§4.5.2-4.5.4).
type TypeMismatchError struct {
	Got  int
	Want string
}

func (err *TypeMismatchError) Error() string {
	return fmt.Sprintf("trie node: got %d-element list, want %s", err.Got, err.Want)
}
