package node

// Document wraps exactly one root node. It is the unit passed between the
// loader and the printer: a JSON text denotes exactly one root value.
type Document struct {
	root Node
}

// NewDocument creates a document from a root node.
func NewDocument(root Node) Document {
	return Document{root: root}
}

// NewArrayDocument creates a document whose root is the given array.
func NewArrayDocument(a Array) Document {
	return Document{root: NewArray(a)}
}

// NewObjectDocument creates a document whose root is the given object.
func NewObjectDocument(o Object) Document {
	return Document{root: NewObject(o)}
}

// Root returns the document's root node.
func (d Document) Root() Node {
	return d.root
}
