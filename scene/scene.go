package scene

import (
	"soft-render/core"
)

// Node is one renderable object: a mesh placed in the world.
type Node struct {
	Name      string
	Mesh      *Mesh
	Transform core.Transform
	Visible   bool
}

func NewNode(name string, mesh *Mesh) *Node {
	return &Node{
		Name:      name,
		Mesh:      mesh,
		Transform: core.NewTransform(),
		Visible:   true,
	}
}

// Scene is a flat list of nodes. There is no hierarchy: every node's
// transform is given directly in world space.
type Scene struct {
	Nodes      []*Node
	Background core.Color
}

func NewScene() *Scene {
	return &Scene{
		Background: core.ColorBlack,
	}
}

func (s *Scene) AddNode(n *Node) {
	s.Nodes = append(s.Nodes, n)
}

func (s *Scene) FindNode(name string) *Node {
	for _, n := range s.Nodes {
		if n.Name == name {
			return n
		}
	}
	return nil
}

func (s *Scene) RemoveNode(name string) bool {
	for i, n := range s.Nodes {
		if n.Name == name {
			s.Nodes = append(s.Nodes[:i], s.Nodes[i+1:]...)
			return true
		}
	}
	return false
}
