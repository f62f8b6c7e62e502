package ecs

import "github.com/jakecoffman/cp"

// PickWorld owns a Chipmunk space holding one static box per pickable entity
// and answers "what is under the pointer" queries.
type PickWorld struct {
	space *cp.Space

	shapeToEntity map[*cp.Shape]Entity
	entityToShape map[Entity]*cp.Shape
}

// NewPickWorld creates an empty pick world.
func NewPickWorld() *PickWorld {
	return &PickWorld{
		space:         cp.NewSpace(),
		shapeToEntity: make(map[*cp.Shape]Entity),
		entityToShape: make(map[Entity]*cp.Shape),
	}
}

// Add registers a pick box of size w by h centred on (cx, cy) for e, replacing
// any previous box.
func (pw *PickWorld) Add(e Entity, cx, cy, w, h float64) {
	if pw == nil || !e.Valid() || w <= 0 || h <= 0 {
		return
	}
	pw.Remove(e)

	bb := cp.BB{L: cx - w/2, B: cy - h/2, R: cx + w/2, T: cy + h/2}
	shape := cp.NewBox2(pw.space.StaticBody, bb, 0)
	pw.space.AddShape(shape)

	pw.shapeToEntity[shape] = e
	pw.entityToShape[e] = shape
}

// Remove drops e's pick box.
func (pw *PickWorld) Remove(e Entity) {
	if pw == nil {
		return
	}
	shape, ok := pw.entityToShape[e]
	if !ok {
		return
	}
	pw.space.RemoveShape(shape)
	delete(pw.entityToShape, e)
	delete(pw.shapeToEntity, shape)
}

// At returns the entity whose box contains (x, y). When boxes overlap the one
// nearest the point's interior wins.
func (pw *PickWorld) At(x, y float64) (Entity, bool) {
	if pw == nil || len(pw.entityToShape) == 0 {
		return 0, false
	}
	info := pw.space.PointQueryNearest(cp.Vector{X: x, Y: y}, 0, cp.SHAPE_FILTER_ALL)
	if info == nil || info.Shape == nil {
		return 0, false
	}
	e, ok := pw.shapeToEntity[info.Shape]
	return e, ok
}

// Len returns the number of pickable entities.
func (pw *PickWorld) Len() int {
	if pw == nil {
		return 0
	}
	return len(pw.entityToShape)
}
