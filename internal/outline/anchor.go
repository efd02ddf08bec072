// Package outline turns a page's table-of-contents markup into a two-level,
// collapsible list of in-page anchors.
package outline

import (
	"encoding/json"
	"fmt"
)

// CollapseState governs whether an AnchorNode's children are rendered.
type CollapseState int

const (
	NotCollapsible CollapseState = iota
	Expanded
	Collapsed
)

var collapseStateNames = map[CollapseState]string{
	NotCollapsible: "none",
	Expanded:       "expanded",
	Collapsed:      "collapsed",
}

func (s CollapseState) String() string {
	if n, ok := collapseStateNames[s]; ok {
		return n
	}
	return fmt.Sprintf("CollapseState(%d)", int(s))
}

// MarshalText encodes the state by name.
func (s CollapseState) MarshalText() ([]byte, error) {
	n, ok := collapseStateNames[s]
	if !ok {
		return nil, fmt.Errorf("unknown collapse state %d", int(s))
	}
	return []byte(n), nil
}

// UnmarshalText decodes a state name.
func (s *CollapseState) UnmarshalText(b []byte) error {
	for k, v := range collapseStateNames {
		if v == string(b) {
			*s = k
			return nil
		}
	}
	return fmt.Errorf("unknown collapse state %q", string(b))
}

// Children distinguishes a node that can never have children (NoChildren) from
// one that may hold zero or more nested anchors.
type Children struct {
	allowed bool
	nodes   []AnchorNode
}

// NoChildren is the marker for anchors that cannot nest others.
var NoChildren = Children{}

// ChildList returns an allowed, possibly empty, child sequence.
func ChildList(nodes ...AnchorNode) Children {
	return Children{allowed: true, nodes: append([]AnchorNode{}, nodes...)}
}

// Allowed reports whether the node may hold children.
func (c Children) Allowed() bool { return c.allowed }

// Nodes returns the child anchors; nil for NoChildren.
func (c Children) Nodes() []AnchorNode { return c.nodes }

// Len is the number of children.
func (c Children) Len() int { return len(c.nodes) }

func (c Children) with(n AnchorNode) Children {
	nodes := make([]AnchorNode, len(c.nodes), len(c.nodes)+1)
	copy(nodes, c.nodes)
	return Children{allowed: true, nodes: append(nodes, n)}
}

// MarshalJSON encodes NoChildren as null and an allowed list as an array.
func (c Children) MarshalJSON() ([]byte, error) {
	if !c.allowed {
		return []byte("null"), nil
	}
	if c.nodes == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.nodes)
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (c *Children) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*c = NoChildren
		return nil
	}
	var nodes []AnchorNode
	if err := json.Unmarshal(b, &nodes); err != nil {
		return err
	}
	*c = ChildList(nodes...)
	return nil
}

// AnchorNode is one table-of-contents entry.
type AnchorNode struct {
	Href     string        `json:"href"`
	Title    string        `json:"title"`
	Children Children      `json:"children"`
	State    CollapseState `json:"status"`
}

// Collapsible reports whether the node toggles between Expanded and Collapsed.
func (n AnchorNode) Collapsible() bool {
	return n.State != NotCollapsible
}

// VisibleChildren returns the children to render: none when the node is
// collapsed or cannot have children.
func (n AnchorNode) VisibleChildren() []AnchorNode {
	if n.State == Collapsed || !n.Children.Allowed() {
		return nil
	}
	return n.Children.Nodes()
}

func (n AnchorNode) toggled() AnchorNode {
	switch n.State {
	case Expanded:
		n.State = Collapsed
	case Collapsed:
		n.State = Expanded
	}
	return n
}
