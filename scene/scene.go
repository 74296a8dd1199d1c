// Package scene is an in-memory scene graph: named objects with a kind,
// a pose, and optional data blocks, plus the world/environment state that
// rendering mutates. It stands in for the host application's scene so the
// placement and render packages can run against it directly (and against
// nothing else in tests).
package scene

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
	"github.com/unixpickle/model3d/render3d"
)

// A Kind classifies a scene object.
type Kind string

const (
	KindCamera Kind = "CAMERA"
	KindMesh   Kind = "MESH"
	KindEmpty  Kind = "EMPTY"
	KindLight  Kind = "LIGHT"
)

// ErrNotFound is returned when a name does not resolve to a scene object.
var ErrNotFound = errors.New("object not found")

// An Object is one entry in the scene graph. Camera objects carry a *Camera
// data block; mesh objects carry a renderable Surface; light objects carry
// a Color.
type Object struct {
	Name     string
	Kind     Kind
	Location model3d.Coord3D
	Rotation Rotation

	// HideRender excludes the object from renders without removing it.
	HideRender bool

	Camera  *Camera
	Surface render3d.Object
	Color   render3d.Color
}

// A Scene holds objects in creation order plus the world environment.
// Enumeration methods preserve that order; batch rendering depends on it.
type Scene struct {
	objects []*Object
	byName  map[string]*Object

	World *World
}

// New returns an empty scene with no world configured.
func New() *Scene {
	return &Scene{byName: map[string]*Object{}}
}

// Add links obj into the scene and returns it. An empty name defaults to the
// object's kind; a taken name gets a numeric suffix ("Camera.001") so names
// stay unique.
func (s *Scene) Add(obj *Object) *Object {
	if obj.Name == "" {
		obj.Name = defaultName(obj.Kind)
	}
	obj.Name = s.dedupName(obj.Name)
	s.objects = append(s.objects, obj)
	s.byName[obj.Name] = obj
	return obj
}

// Get resolves an object by exact name.
func (s *Scene) Get(name string) (*Object, bool) {
	obj, ok := s.byName[name]
	return obj, ok
}

// ByKind returns the objects of one kind in creation order.
func (s *Scene) ByKind(kind Kind) []*Object {
	var out []*Object
	for _, obj := range s.objects {
		if obj.Kind == kind {
			out = append(out, obj)
		}
	}
	return out
}

// Objects returns every object in creation order. The slice is a copy;
// mutating it does not unlink anything.
func (s *Scene) Objects() []*Object {
	return append([]*Object{}, s.objects...)
}

// Len reports the number of linked objects.
func (s *Scene) Len() int {
	return len(s.objects)
}

// Remove unlinks the named object. Removing a missing name is a no-op.
func (s *Scene) Remove(name string) bool {
	obj, ok := s.byName[name]
	if !ok {
		return false
	}
	delete(s.byName, name)
	for i, o := range s.objects {
		if o == obj {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			break
		}
	}
	return true
}

// Rename gives obj a new name, applying the same uniqueness suffix rules as
// Add, and returns the name actually assigned.
func (s *Scene) Rename(obj *Object, name string) string {
	delete(s.byName, obj.Name)
	obj.Name = s.dedupName(name)
	s.byName[obj.Name] = obj
	return obj.Name
}

// Duplicate links a full copy of obj, cloning its data blocks so the copy
// can be mutated independently. Surfaces are shared, matching how the host
// shares mesh data between object copies.
func (s *Scene) Duplicate(obj *Object) *Object {
	dup := &Object{
		Name:       obj.Name,
		Kind:       obj.Kind,
		Location:   obj.Location,
		Rotation:   obj.Rotation,
		HideRender: obj.HideRender,
		Surface:    obj.Surface,
		Color:      obj.Color,
	}
	if obj.Camera != nil {
		dup.Camera = &Camera{}
		if err := copier.Copy(dup.Camera, obj.Camera); err != nil {
			// Camera is a flat value struct; copier cannot fail on it.
			panic(fmt.Sprintf("clone camera data: %v", err))
		}
	}
	return s.Add(dup)
}

func (s *Scene) dedupName(name string) string {
	if _, taken := s.byName[name]; !taken {
		return name
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s.%03d", name, i)
		if _, taken := s.byName[candidate]; !taken {
			return candidate
		}
	}
}

func defaultName(kind Kind) string {
	switch kind {
	case KindCamera:
		return "Camera"
	case KindMesh:
		return "Mesh"
	case KindLight:
		return "Light"
	default:
		return "Empty"
	}
}
