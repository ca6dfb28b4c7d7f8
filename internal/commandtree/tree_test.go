package commandtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects the params of every invocation.
type recorder struct {
	calls [][]string
}

func (r *recorder) Invoke(params []string) {
	r.calls = append(r.calls, params)
}

func demoTree(captureRemainder bool) (*Tree, map[string]*recorder) {
	tree := New(captureRemainder)
	actions := map[string]*recorder{}
	for _, path := range [][]string{
		{"git", "add"},
		{"git", "commit"},
		{"docker", "run"},
		{"docker", "build"},
	} {
		rec := &recorder{}
		actions[path[0]+" "+path[1]] = rec
		tree.Insert(path, rec)
	}
	return tree, actions
}

func TestInsertThenFindExecutesLastAction(t *testing.T) {
	tree := New(false)
	first := &recorder{}
	second := &recorder{}

	tree.Insert([]string{"git", "add"}, first)
	tree.Insert([]string{"git", "add"}, second)

	match, ok := tree.Find([]string{"git", "add"})
	require.True(t, ok)
	assert.True(t, match.Execute())
	assert.Empty(t, first.calls)
	require.Len(t, second.calls, 1)
	assert.Equal(t, []string{}, second.calls[0])
}

func TestFindIntermediateNode(t *testing.T) {
	tree, _ := demoTree(false)

	match, ok := tree.Find([]string{"git"})
	require.True(t, ok)
	assert.False(t, match.Node.HasAction())
	assert.False(t, match.Execute())
	assert.Equal(t, []string{"add", "commit"}, match.Node.Keys())
}

func TestFindEmptyPathReturnsRoot(t *testing.T) {
	tree, _ := demoTree(false)

	match, ok := tree.Find(nil)
	require.True(t, ok)
	assert.Same(t, tree.Root(), match.Node)
	assert.Equal(t, []string{"docker", "git"}, match.Node.Keys())
}

func TestFindWithoutCaptureFailsOnUnknownToken(t *testing.T) {
	tree, _ := demoTree(false)

	_, ok := tree.Find([]string{"git", "push"})
	assert.False(t, ok)

	_, ok = tree.Find([]string{"svn"})
	assert.False(t, ok)
}

func TestFindCapturesRemainder(t *testing.T) {
	tree, actions := demoTree(true)

	exact, ok := tree.Find([]string{"git", "add"})
	require.True(t, ok)

	extended, ok := tree.Find([]string{"git", "add", "main.go", "README.md"})
	require.True(t, ok)
	assert.Same(t, exact.Node, extended.Node)
	assert.Equal(t, []string{"main.go", "README.md"}, extended.Params)

	assert.True(t, extended.Execute())
	require.Len(t, actions["git add"].calls, 1)
	assert.Equal(t, []string{"main.go", "README.md"}, actions["git add"].calls[0])
}

func TestFindCaptureAtIntermediateNode(t *testing.T) {
	tree, _ := demoTree(true)

	match, ok := tree.Find([]string{"git", "push", "origin"})
	require.True(t, ok)
	assert.Equal(t, []string{"push", "origin"}, match.Params)
	assert.False(t, match.Execute())
}

func TestRepeatedLookupsDoNotShareParams(t *testing.T) {
	tree, _ := demoTree(true)

	first, ok := tree.Find([]string{"git", "add", "a"})
	require.True(t, ok)
	second, ok := tree.Find([]string{"git", "add", "b", "c"})
	require.True(t, ok)

	assert.Equal(t, []string{"a"}, first.Params)
	assert.Equal(t, []string{"b", "c"}, second.Params)
}

func TestInsertVariadic(t *testing.T) {
	tree := New(false)
	insert := &recorder{}
	tree.Insert([]string{"playlist", "add"}, &recorder{})
	tree.InsertVariadic([]string{"playlist", "insert"}, insert)

	match, ok := tree.Find([]string{"playlist", "insert", "a", "b", "c"})
	require.True(t, ok)
	assert.True(t, match.Execute())
	require.Len(t, insert.calls, 1)
	assert.Equal(t, []string{"a", "b", "c"}, insert.calls[0])

	// Capture is per node, so siblings still reject extra tokens.
	_, ok = tree.Find([]string{"playlist", "add", "x"})
	assert.False(t, ok)
}

func TestRemovePrunesEmptyNodes(t *testing.T) {
	tree := New(false)
	tree.Insert([]string{"git", "add"}, &recorder{})
	tree.Insert([]string{"docker", "run"}, &recorder{})

	empty := tree.Remove([]string{"git", "add"})
	assert.False(t, empty)
	assert.Equal(t, []string{"docker"}, tree.Root().Keys())

	_, ok := tree.Find([]string{"git", "add"})
	assert.False(t, ok)

	assert.True(t, tree.Remove([]string{"docker", "run"}))
	assert.Empty(t, tree.Root().Keys())
}

func TestRemoveKeepsNodesWithChildren(t *testing.T) {
	tree := New(false)
	tree.Insert([]string{"git"}, &recorder{})
	tree.Insert([]string{"git", "add"}, &recorder{})

	tree.Remove([]string{"git"})

	match, ok := tree.Find([]string{"git"})
	require.True(t, ok)
	assert.False(t, match.Node.HasAction())
	assert.Equal(t, []string{"add"}, match.Node.Keys())
}

func TestRemoveUnknownPath(t *testing.T) {
	tree, _ := demoTree(false)

	assert.False(t, tree.Remove([]string{"svn", "checkout"}))
	assert.Equal(t, []string{"docker", "git"}, tree.Root().Keys())
}

func TestRemoveThenFindWithCapture(t *testing.T) {
	tree, _ := demoTree(true)

	tree.Remove([]string{"git", "add"})

	match, ok := tree.Find([]string{"git", "add"})
	require.True(t, ok)
	assert.Equal(t, []string{"commit"}, match.Node.Keys())
	assert.Equal(t, []string{"add"}, match.Params)

	tree.Remove([]string{"git", "commit"})
	match, ok = tree.Find([]string{"git", "add"})
	require.True(t, ok)
	assert.Same(t, tree.Root(), match.Node)
	assert.Equal(t, []string{"git", "add"}, match.Params)
}

func TestComplete(t *testing.T) {
	tree, _ := demoTree(false)

	tests := []struct {
		name     string
		path     []string
		prefix   string
		expected []string
	}{
		{"children with prefix", []string{"git"}, "ad", []string{"add"}},
		{"all children", []string{"git"}, "", []string{"add", "commit"}},
		{"top level", nil, "", []string{"docker", "git"}},
		{"top level prefix", nil, "d", []string{"docker"}},
		{"last segment as prefix", []string{"docker", "b"}, "", []string{"build"}},
		{"partial first token", []string{"gi"}, "", []string{"git"}},
		{"leaf has no children", []string{"git", "add"}, "", []string{}},
		{"unknown earlier segment", []string{"svn", "co"}, "", []string{}},
		{"no match", []string{"git", "x"}, "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tree.Complete(tt.path, tt.prefix))
		})
	}
}

func TestWalk(t *testing.T) {
	tree, _ := demoTree(false)
	tree.Insert([]string{"git"}, &recorder{})

	var paths [][]string
	tree.Walk(func(path []string, node *Node) {
		assert.True(t, node.HasAction())
		paths = append(paths, path)
	})

	assert.Equal(t, [][]string{
		{"docker", "build"},
		{"docker", "run"},
		{"git"},
		{"git", "add"},
		{"git", "commit"},
	}, paths)
}

func TestActionFunc(t *testing.T) {
	var got []string
	tree := New(true)
	tree.Insert([]string{"echo"}, ActionFunc(func(params []string) {
		got = params
	}))

	match, ok := tree.Find(Fields("echo hello world"))
	require.True(t, ok)
	assert.True(t, match.Execute())
	assert.Equal(t, []string{"hello", "world"}, got)
}

func TestNodeAction(t *testing.T) {
	tree, actions := demoTree(false)

	match, ok := tree.Find([]string{"git", "add"})
	require.True(t, ok)
	assert.Same(t, actions["git add"], match.Node.Action())

	match, ok = tree.Find([]string{"git"})
	require.True(t, ok)
	assert.Nil(t, match.Node.Action())
}
