// Package commandtree stores hierarchical command paths ("git add", "docker run")
// in a token-keyed trie and resolves submitted paths to executable actions.
package commandtree

import (
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Action is the executable part of a command.
type Action interface {
	Invoke(params []string)
}

// ActionFunc adapts a plain function to the Action interface.
type ActionFunc func(params []string)

// Invoke calls f(params).
func (f ActionFunc) Invoke(params []string) {
	f(params)
}

// Node is a single token position in the tree. The root node represents
// the empty path.
type Node struct {
	children map[string]*Node
	action   Action
	// captureRemainder makes lookups that walk off this node resolve here,
	// with the unmatched tokens returned as parameters.
	captureRemainder bool
}

func newNode() *Node {
	return &Node{children: make(map[string]*Node)}
}

// HasAction reports whether the node is an executable command.
func (n *Node) HasAction() bool {
	return n.action != nil
}

// Action returns the node's action, or nil for a grouping node.
func (n *Node) Action() Action {
	return n.action
}

// Keys returns the immediate child tokens in lexicographic order.
func (n *Node) Keys() []string {
	keys := lo.Keys(n.children)
	slices.Sort(keys)
	return keys
}

// Child returns the child node for token, or nil.
func (n *Node) Child(token string) *Node {
	return n.children[token]
}

func (n *Node) empty() bool {
	return n.action == nil && len(n.children) == 0
}

// Match is the result of a successful lookup. Params holds the tokens that
// were not part of the tree when the lookup captured the remainder.
type Match struct {
	Node   *Node
	Params []string
}

// Execute invokes the matched node's action with the captured params.
// It returns false if the node has no action (an intermediate grouping node).
func (m Match) Execute() bool {
	if m.Node == nil || m.Node.action == nil {
		return false
	}
	params := m.Params
	if params == nil {
		params = []string{}
	}
	m.Node.action.Invoke(params)
	return true
}

// Tree is a command trie. The zero value is not usable; use New.
type Tree struct {
	root *Node

	// CaptureRemainder applies remainder capture to every node in the tree.
	CaptureRemainder bool
}

// New creates an empty tree.
func New(captureRemainder bool) *Tree {
	return &Tree{
		root:             newNode(),
		CaptureRemainder: captureRemainder,
	}
}

// Root returns the node of the empty path.
func (t *Tree) Root() *Node {
	return t.root
}

// Insert installs action at path, creating intermediate nodes as needed.
// An existing action at path is replaced.
func (t *Tree) Insert(path []string, action Action) {
	t.insert(path, action)
}

// InsertVariadic installs action at path and marks the node so that any
// tokens following path are passed to action as parameters, even when the
// tree-wide CaptureRemainder is off.
func (t *Tree) InsertVariadic(path []string, action Action) {
	t.insert(path, action).captureRemainder = true
}

func (t *Tree) insert(path []string, action Action) *Node {
	node := t.root
	for _, token := range path {
		child, ok := node.children[token]
		if !ok {
			child = newNode()
			node.children[token] = child
		}
		node = child
	}
	node.action = action
	return node
}

// Find walks path token by token. When a token has no matching child and
// remainder capture applies, the deepest matched node is returned with the
// rest of the path (from the mismatch on) as params. A fully matched path
// returns its node whether or not it has an action.
func (t *Tree) Find(path []string) (Match, bool) {
	node := t.root
	for i, token := range path {
		child, ok := node.children[token]
		if !ok {
			if t.CaptureRemainder || node.captureRemainder {
				return Match{Node: node, Params: slices.Clone(path[i:])}, true
			}
			return Match{}, false
		}
		node = child
	}
	return Match{Node: node}, true
}

// Complete returns the child tokens at path that start with prefix, sorted.
// If the last segment of path is not a known token it is used as the prefix
// instead. Any earlier unknown segment yields no completions.
func (t *Tree) Complete(path []string, prefix string) []string {
	node := t.root
	for i, token := range path {
		child, ok := node.children[token]
		if !ok {
			if i == len(path)-1 {
				return node.completions(token)
			}
			return []string{}
		}
		node = child
	}
	return node.completions(prefix)
}

func (n *Node) completions(prefix string) []string {
	return lo.Filter(n.Keys(), func(key string, _ int) bool {
		return strings.HasPrefix(key, prefix)
	})
}

// Remove clears the action at path and prunes every node left without an
// action or children. The root is never pruned. The result is true when the
// tree is empty afterwards; removing an unknown path changes nothing and
// returns false.
func (t *Tree) Remove(path []string) bool {
	return t.root.remove(path)
}

// remove reports whether n is empty after the removal, which tells the
// parent to drop it.
func (n *Node) remove(path []string) bool {
	if len(path) == 0 {
		n.action = nil
		n.captureRemainder = false
		return n.empty()
	}

	child, ok := n.children[path[0]]
	if !ok {
		return false
	}
	if child.remove(path[1:]) {
		delete(n.children, path[0])
	}
	return n.empty()
}

// Walk calls fn for every executable path in lexicographic order.
func (t *Tree) Walk(fn func(path []string, node *Node)) {
	t.root.walk(nil, fn)
}

func (n *Node) walk(prefix []string, fn func(path []string, node *Node)) {
	if n.action != nil {
		fn(slices.Clone(prefix), n)
	}
	for _, key := range n.Keys() {
		n.children[key].walk(append(prefix, key), fn)
	}
}
