package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soft-render/math"
)

func TestSceneAddFindRemove(t *testing.T) {
	sc := NewScene()
	sc.AddNode(NewNode("a", CreateTriangle()))
	sc.AddNode(NewNode("b", CreateQuad()))

	require.Len(t, sc.Nodes, 2)
	assert.NotNil(t, sc.FindNode("a"))
	assert.Nil(t, sc.FindNode("missing"))

	assert.True(t, sc.RemoveNode("a"))
	assert.False(t, sc.RemoveNode("a"))
	assert.Len(t, sc.Nodes, 1)
	assert.Nil(t, sc.FindNode("a"))
}

func TestNewNodeDefaults(t *testing.T) {
	n := NewNode("n", nil)
	assert.True(t, n.Visible)
	assert.Equal(t, math.Vec3One, n.Transform.Scale)
	assert.Equal(t, math.QuaternionIdentity(), n.Transform.Rotation)
}

func TestMeshTriangleAccess(t *testing.T) {
	m := CreateQuad()
	require.Equal(t, 2, m.TriangleCount())

	v0, _, _ := m.Triangle(0)
	assert.Equal(t, m.Vertices[m.Indices[0]], v0)
}
