package menu

import (
	"sort"

	"git.home.luguber.info/inful/docnav/internal/slugpath"
)

// Trie indexes grouping keys by path segment so that the keys below a given key
// can be reached without re-filtering the whole key set at every level.
type Trie struct {
	root *trieNode
}

type trieNode struct {
	key      string // grouping key, set only when this path is a group
	pages    []PageRecord
	isGroup  bool
	children map[string]*trieNode
}

// NewTrie builds a segment trie over every key in groups.
func NewTrie(groups Groups) *Trie {
	t := &Trie{root: newTrieNode()}
	for key, pages := range groups {
		n := t.root
		for _, seg := range slugpath.Segments(key) {
			child, ok := n.children[seg]
			if !ok {
				child = newTrieNode()
				n.children[seg] = child
			}
			n = child
		}
		n.key = key
		n.pages = pages
		n.isGroup = true
	}
	return t
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[string]*trieNode)}
}

// groupsBelow returns n and every descendant that carries a group, in lexical
// segment order with a node preceding its descendants.
func (n *trieNode) groupsBelow() []*trieNode {
	var out []*trieNode
	var walk func(*trieNode)
	walk = func(cur *trieNode) {
		if cur.isGroup {
			out = append(out, cur)
		}
		segs := make([]string, 0, len(cur.children))
		for s := range cur.children {
			segs = append(segs, s)
		}
		sort.Strings(segs)
		for _, s := range segs {
			walk(cur.children[s])
		}
	}
	walk(n)
	return out
}

// Len reports how many grouping keys the trie holds.
func (t *Trie) Len() int {
	return len(t.root.groupsBelow())
}
