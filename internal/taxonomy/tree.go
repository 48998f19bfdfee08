// tree.go folds paths into a prefix-sharing tree.

package taxonomy

// Node is one segment in the taxonomy tree. Path holds the labels from the
// top level down to and including Label. Children are unique by label and
// kept in first-insertion order.
type Node struct {
	Label string  `json:"label"`
	Path  Path    `json:"path"`
	Nodes []*Node `json:"nodes"`

	byLabel map[string]*Node
}

func newNode(label string, path Path) *Node {
	return &Node{
		Label:   label,
		Path:    path,
		Nodes:   make([]*Node, 0),
		byLabel: make(map[string]*Node),
	}
}

// child returns the child with label, creating it when absent.
func (n *Node) child(label string) *Node {
	if c, ok := n.byLabel[label]; ok {
		return c
	}
	p := make(Path, len(n.Path)+1)
	copy(p, n.Path)
	p[len(n.Path)] = label

	c := newNode(label, p)
	n.byLabel[label] = c
	n.Nodes = append(n.Nodes, c)
	return c
}

// Child returns the direct child with the given label, or nil.
func (n *Node) Child(label string) *Node {
	for _, c := range n.Nodes {
		if c.Label == label {
			return c
		}
	}
	return nil
}

// BuildTree inserts every unique path under a synthetic root and returns the
// root's children.
func BuildTree(paths []Path) []*Node {
	root := newNode(RootLabel, Path{})
	for _, p := range UniquePaths(paths) {
		n := root
		for _, seg := range p {
			n = n.child(seg)
		}
	}
	return root.Nodes
}

// Walk calls fn for every node depth-first, parents before children. depth
// is 0 for top-level nodes.
func Walk(nodes []*Node, fn func(n *Node, depth int)) {
	var walk func([]*Node, int)
	walk = func(ns []*Node, depth int) {
		for _, n := range ns {
			fn(n, depth)
			walk(n.Nodes, depth+1)
		}
	}
	walk(nodes, 0)
}

// Count returns the total number of nodes in the forest.
func Count(nodes []*Node) int {
	n := 0
	Walk(nodes, func(*Node, int) { n++ })
	return n
}
