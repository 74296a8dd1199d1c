package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unixpickle/model3d/model3d"
)

func TestSceneAddAndGet(t *testing.T) {
	sc := New()
	obj := sc.Add(&Object{Name: "Target", Kind: KindEmpty})

	got, ok := sc.Get("Target")
	require.True(t, ok)
	assert.Same(t, obj, got)

	_, ok = sc.Get("Missing")
	assert.False(t, ok)
}

func TestSceneByKindPreservesCreationOrder(t *testing.T) {
	sc := New()
	sc.Add(&Object{Name: "A", Kind: KindCamera})
	sc.Add(&Object{Name: "M", Kind: KindMesh})
	sc.Add(&Object{Name: "B", Kind: KindCamera})
	sc.Add(&Object{Name: "C", Kind: KindCamera})

	var names []string
	for _, obj := range sc.ByKind(KindCamera) {
		names = append(names, obj.Name)
	}
	assert.Equal(t, []string{"A", "B", "C"}, names)
	assert.Equal(t, 4, sc.Len())
}

func TestSceneDefaultAndDedupNames(t *testing.T) {
	sc := New()
	a := sc.Add(&Object{Kind: KindCamera})
	b := sc.Add(&Object{Kind: KindCamera})
	c := sc.Add(&Object{Kind: KindCamera})

	assert.Equal(t, "Camera", a.Name)
	assert.Equal(t, "Camera.001", b.Name)
	assert.Equal(t, "Camera.002", c.Name)

	_, ok := sc.Get("Camera.001")
	assert.True(t, ok)
}

func TestSceneRename(t *testing.T) {
	sc := New()
	a := sc.Add(&Object{Name: "Cam", Kind: KindCamera})
	b := sc.Add(&Object{Name: "Other", Kind: KindCamera})

	assert.Equal(t, "Cam.001", sc.Rename(b, "Cam"))

	_, ok := sc.Get("Other")
	assert.False(t, ok)
	got, ok := sc.Get("Cam")
	require.True(t, ok)
	assert.Same(t, a, got)
}

func TestSceneRemove(t *testing.T) {
	sc := New()
	sc.Add(&Object{Name: "Cam", Kind: KindCamera})

	assert.True(t, sc.Remove("Cam"))
	assert.Equal(t, 0, sc.Len())
	_, ok := sc.Get("Cam")
	assert.False(t, ok)

	// Removing again is a no-op.
	assert.False(t, sc.Remove("Cam"))
}

func TestSceneDuplicateClonesCameraData(t *testing.T) {
	sc := New()
	base := sc.Add(&Object{
		Name:     "Base",
		Kind:     KindCamera,
		Location: model3d.XYZ(1, 2, 3),
		Camera:   &Camera{Lens: 85, SensorWidth: 36, SensorHeight: 24, ClipStart: 0.1, ClipEnd: 100},
	})

	dup := sc.Duplicate(base)
	assert.Equal(t, "Base.001", dup.Name)
	assert.Equal(t, base.Location, dup.Location)
	require.NotNil(t, dup.Camera)
	assert.Equal(t, 85.0, dup.Camera.Lens)

	// The data block is a copy, not shared.
	dup.Camera.Lens = 24
	assert.Equal(t, 85.0, base.Camera.Lens)
	assert.Equal(t, 2, sc.Len())
}
