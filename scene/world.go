package scene

// Shader node types used by the world graph.
const (
	NodeBackground         = "BACKGROUND"
	NodeEnvironmentTexture = "TEX_ENVIRONMENT"
)

// Node names, matching the host's defaults so lookups line up with what a
// user would see in the node editor.
const (
	backgroundNodeName  = "Background"
	environmentNodeName = "Environment Texture"
)

// A Node is one shader node in a world's node graph. Environment texture
// nodes carry the path of their source image.
type Node struct {
	Name  string
	Type  string
	Image string
}

// A Link connects one node's output to another's input.
type Link struct {
	From string
	To   string
}

// A World holds the environment lighting state: a shader node graph with a
// Background node that the environment texture feeds.
type World struct {
	Name     string
	UseNodes bool

	nodes []*Node
	links []Link
}

// NewWorld returns a world with the stock Background node and nothing wired
// into it.
func NewWorld(name string) *World {
	w := &World{Name: name}
	w.AddNode(backgroundNodeName, NodeBackground)
	return w
}

// Node finds a node by name.
func (w *World) Node(name string) *Node {
	for _, n := range w.nodes {
		if n.Name == name {
			return n
		}
	}
	return nil
}

// AddNode appends a node to the graph.
func (w *World) AddNode(name, typ string) *Node {
	n := &Node{Name: name, Type: typ}
	w.nodes = append(w.nodes, n)
	return n
}

// LinkNodes wires from's output into to's input. Duplicate links collapse.
func (w *World) LinkNodes(from, to string) {
	if w.Linked(from, to) {
		return
	}
	w.links = append(w.links, Link{From: from, To: to})
}

// Linked reports whether a from→to link exists.
func (w *World) Linked(from, to string) bool {
	for _, l := range w.links {
		if l.From == from && l.To == to {
			return true
		}
	}
	return false
}

// Nodes returns the node graph in creation order.
func (w *World) Nodes() []*Node {
	return append([]*Node{}, w.nodes...)
}

// EnsureEnvironment points the world's environment texture at image,
// creating the texture node and its link to the Background node only when
// absent. Calling it repeatedly swaps the image without growing the graph.
func (w *World) EnsureEnvironment(image string) *Node {
	env := w.Node(environmentNodeName)
	if env == nil {
		env = w.AddNode(environmentNodeName, NodeEnvironmentTexture)
		w.LinkNodes(environmentNodeName, backgroundNodeName)
	}
	env.Image = image
	return env
}

// Environment returns the current environment image, if one is wired in.
func (w *World) Environment() (string, bool) {
	if env := w.Node(environmentNodeName); env != nil && env.Image != "" {
		return env.Image, true
	}
	return "", false
}
