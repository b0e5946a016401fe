package genfs

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/xlab/treeprint"
)

func newTree() *tree {
	return &tree{
		node: &node{
			children: map[string]*node{},
			Path:     ".",
			Name:     ".",
			Mode:     modeDir,
		},
	}
}

type tree struct {
	node *node
}

type node struct {
	Path string // path from root
	Name string // basename

	Mode      mode // mode of the file
	generator *fileGenerator

	children map[string]*node
	parent   *node
}

func (n *node) Children() (children []*node) {
	for _, child := range n.children {
		children = append(children, child)
	}
	sort.Slice(children, func(i, j int) bool {
		return children[i].Name < children[j].Name
	})
	return children
}

// Insert a generator at fpath, creating filler directories along the way. An
// existing generator at the same path is replaced.
func (t *tree) Insert(fpath string, gen *fileGenerator) error {
	if fpath == "." {
		return fmt.Errorf("genfs: unable to generate the root directory. %w", fs.ErrInvalid)
	}
	segments := strings.Split(fpath, "/")
	last := len(segments) - 1
	parent, err := t.mkdirAll(segments[:last])
	if err != nil {
		return err
	}
	name := segments[last]
	child, found := parent.children[name]
	if !found {
		parent.children[name] = &node{
			children:  map[string]*node{},
			generator: gen,
			Path:      fpath,
			Name:      name,
			Mode:      modeGen,
			parent:    parent,
		}
		return nil
	}
	if child.Mode.IsDir() {
		return fmt.Errorf("genfs: %q is already a directory. %w", fpath, fs.ErrExist)
	}
	child.generator = gen
	return nil
}

func (t *tree) mkdirAll(segments []string) (*node, error) {
	parent := t.node
	for _, segment := range segments {
		child, ok := parent.children[segment]
		if !ok {
			child = &node{
				children: map[string]*node{},
				Path:     path.Join(parent.Path, segment),
				Name:     segment,
				Mode:     modeDir,
				parent:   parent,
			}
			parent.children[segment] = child
		} else if !child.Mode.IsDir() {
			return nil, fmt.Errorf("genfs: %q is already a generated file. %w", child.Path, fs.ErrExist)
		}
		parent = child
	}
	return parent, nil
}

// Find an exact match for the provided path
func (t *tree) Find(fpath string) (n *node, ok bool) {
	// Special case to find the root node
	if fpath == "." {
		return t.node, true
	}
	// Traverse the children keyed by segments
	n = t.node
	for _, name := range strings.Split(fpath, "/") {
		n, ok = n.children[name]
		if !ok {
			return nil, false
		}
	}
	return n, true
}

// Generators returns every generated node in path order
func (t *tree) Generators() (nodes []*node) {
	var walk func(n *node)
	walk = func(n *node) {
		if n.Mode.IsGen() {
			nodes = append(nodes, n)
		}
		for _, child := range n.Children() {
			walk(child)
		}
	}
	walk(t.node)
	return nodes
}

func formatNode(node *node) string {
	if node.generator == nil {
		return fmt.Sprintf("%s mode=%s", node.Name, node.Mode)
	}
	return fmt.Sprintf("%s mode=%s generator=%s", node.Name, node.Mode, node.generator)
}

func (t *tree) Print() string {
	tp := treeprint.NewWithRoot(formatNode(t.node))
	print(tp, t.node)
	return tp.String()
}

func print(tp treeprint.Tree, node *node) {
	for _, child := range node.Children() {
		cp := tp.AddBranch(formatNode(child))
		print(cp, child)
	}
}
