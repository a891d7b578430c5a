package trie

import "fmt"

var indices = []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "a", "b", "c", "d", "e", "f", "[16]"}

// node is the in-memory representation of one of the three node shapes
// described in §4.5: fullNode (branch), shortNode (leaf/extension), or one
// of the two leaf representations hashNode/valueNode.
type node interface {
	cache() (hashNode, bool)
	fstring(string) string
}

// fullNode is a 17-way branch: Children[0..15] are the subtries reached by
// consuming the next nibble, Children[16] is the value stored exactly at
// this prefix (or nil).
type fullNode struct {
	Children [17]node
	flags    nodeFlag
}

// shortNode is a leaf or extension node depending on whether Key carries the
// terminator (§3.3): Val is a valueNode for a leaf, any other node kind for
// an extension.
type shortNode struct {
	Key   []byte
	Val   node
	flags nodeFlag
}

// hashNode is a reference to a node living elsewhere in the store, addressed
// by its content hash. This trie never inlines small nodes (§4.5 Non-goals):
// every non-empty node, however small its encoding, is stored and referenced
// by hash.
type hashNode []byte

// valueNode is a user value stored at the 17th slot of a branch or as a
// leaf's payload.
type valueNode []byte

func (n *fullNode) copy() *fullNode   { cp := *n; return &cp }
func (n *shortNode) copy() *shortNode { cp := *n; return &cp }

// nodeFlag carries caching metadata; dirty marks a node created or modified
// by the current operation and not yet persisted by hasher.persist.
type nodeFlag struct {
	hash  hashNode
	dirty bool
}

func (n *fullNode) cache() (hashNode, bool)  { return n.flags.hash, n.flags.dirty }
func (n *shortNode) cache() (hashNode, bool) { return n.flags.hash, n.flags.dirty }
func (n hashNode) cache() (hashNode, bool)   { return nil, true }
func (n valueNode) cache() (hashNode, bool)  { return nil, true }

func (n *fullNode) String() string  { return n.fstring("") }
func (n *shortNode) String() string { return n.fstring("") }
func (n hashNode) String() string   { return n.fstring("") }
func (n valueNode) String() string  { return n.fstring("") }

func (n *fullNode) fstring(ind string) string {
	resp := fmt.Sprintf("[\n%s  ", ind)
	for i, child := range &n.Children {
		if child == nil {
			resp += fmt.Sprintf("%s: <nil> ", indices[i])
		} else {
			resp += fmt.Sprintf("%s: %v", indices[i], child.fstring(ind+"  "))
		}
	}
	return resp + fmt.Sprintf("\n%s] ", ind)
}

func (n *shortNode) fstring(ind string) string {
	return fmt.Sprintf("{%x: %v} ", n.Key, n.Val.fstring(ind+"  "))
}

func (n hashNode) fstring(string) string  { return fmt.Sprintf("<%x> ", []byte(n)) }
func (n valueNode) fstring(string) string { return fmt.Sprintf("%x ", []byte(n)) }
