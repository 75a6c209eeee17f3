package ecs

import (
	"math"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/skulls/common"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypePlayer
	collisionTypeEnemy
)

// Contact is a collision-start between a player shape and an enemy shape.
type Contact struct {
	Player Entity
	Enemy  Entity
}

// Hit is the nearest result of a shape cast.
type Hit struct {
	Entity   Entity
	Point    cp.Vector
	Distance float64
}

type physicsShape struct {
	body       *cp.Body
	shape      *cp.Shape
	categories uint
}

// PhysicsWorld owns the Chipmunk space. It stands in for the engine's
// collision service: body integration, shape casts, overlap queries and
// collision-start reporting. Gravity is zero since the arena is the ground
// plane seen from above.
type PhysicsWorld struct {
	space         *cp.Space
	handlersReady bool

	shapeToEntity map[*cp.Shape]Entity
	entityShapes  map[Entity]physicsShape
	contacts      []Contact
}

// NewPhysicsWorld creates an empty physics world.
func NewPhysicsWorld() *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{})

	pw := &PhysicsWorld{
		space:         space,
		shapeToEntity: make(map[*cp.Shape]Entity),
		entityShapes:  make(map[Entity]physicsShape),
	}
	pw.setupHandlers()
	return pw
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

func filterFor(categories, mask uint) cp.ShapeFilter {
	return cp.ShapeFilter{Group: cp.NO_GROUP, Categories: categories, Mask: mask}
}

func collisionTypeFor(categories uint) cp.CollisionType {
	switch {
	case categories&common.GroupPlayer != 0:
		return collisionTypePlayer
	case categories&common.GroupEnemy != 0:
		return collisionTypeEnemy
	default:
		return collisionTypeSolid
	}
}

// AddCircle creates a dynamic, non-rotating circle body for e.
func (pw *PhysicsWorld) AddCircle(e Entity, pos cp.Vector, radius float64, categories, mask uint) (*cp.Body, *cp.Shape) {
	if pw == nil || pw.space == nil {
		return nil, nil
	}
	pw.RemoveEntity(e)

	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(pos)
	body.UserData = e

	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetFilter(filterFor(categories, mask))
	shape.SetCollisionType(collisionTypeFor(categories))
	shape.UserData = e

	pw.space.AddBody(body)
	pw.space.AddShape(shape)

	pw.shapeToEntity[shape] = e
	pw.entityShapes[e] = physicsShape{body: body, shape: shape, categories: categories}
	return body, shape
}

// AddStaticBox adds an axis-aligned static box that belongs to no entity.
func (pw *PhysicsWorld) AddStaticBox(center cp.Vector, halfW, halfH float64, categories, mask uint) *cp.Shape {
	if pw == nil || pw.space == nil {
		return nil
	}
	bb := cp.BB{L: center.X - halfW, B: center.Y - halfH, R: center.X + halfW, T: center.Y + halfH}
	shape := cp.NewBox2(pw.space.StaticBody, bb, 0)
	shape.SetFriction(0)
	shape.SetFilter(filterFor(categories, mask))
	shape.SetCollisionType(collisionTypeSolid)
	pw.space.AddShape(shape)
	return shape
}

// RemoveEntity drops e's body and shape. Must not be called during Step.
func (pw *PhysicsWorld) RemoveEntity(e Entity) {
	if pw == nil || pw.space == nil {
		return
	}
	ps, ok := pw.entityShapes[e]
	if !ok {
		return
	}
	delete(pw.entityShapes, e)
	delete(pw.shapeToEntity, ps.shape)
	pw.space.RemoveShape(ps.shape)
	pw.space.RemoveBody(ps.body)
}

// Body returns e's physics body.
func (pw *PhysicsWorld) Body(e Entity) (*cp.Body, bool) {
	if pw == nil {
		return nil, false
	}
	ps, ok := pw.entityShapes[e]
	if !ok {
		return nil, false
	}
	return ps.body, true
}

// BodyCount returns the number of entity-owned bodies.
func (pw *PhysicsWorld) BodyCount() int {
	if pw == nil {
		return 0
	}
	return len(pw.entityShapes)
}

// Step advances the physics simulation.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil || dt <= 0 {
		return
	}
	pw.space.Step(dt)
}

// DrainContacts returns the collision-start events gathered since the last
// drain.
func (pw *PhysicsWorld) DrainContacts() []Contact {
	if pw == nil || len(pw.contacts) == 0 {
		return nil
	}
	out := pw.contacts
	pw.contacts = nil
	return out
}

// ShapeCast sweeps a circle of radius from origin along dir for at most
// maxDist and returns the nearest shape passing the filter. A zero dir
// never hits.
func (pw *PhysicsWorld) ShapeCast(origin, dir cp.Vector, radius, maxDist float64, categories, mask uint) (Hit, bool) {
	if pw == nil || pw.space == nil || maxDist <= 0 {
		return Hit{}, false
	}
	dir = common.NormalizeOrZero(dir)
	if dir.LengthSq() == 0 {
		return Hit{}, false
	}
	end := origin.Add(dir.Mult(maxDist))
	info := pw.space.SegmentQueryFirst(origin, end, radius, filterFor(categories, mask))
	if info.Shape == nil {
		return Hit{}, false
	}
	e, ok := pw.shapeToEntity[info.Shape]
	if !ok {
		return Hit{}, false
	}
	return Hit{Entity: e, Point: info.Point, Distance: info.Alpha * maxDist}, true
}

// Overlap returns every entity whose shape comes within radius of center,
// ordered by entity handle so callers see a stable order. The bounding box
// query finds candidates; the point query keeps those actually in range.
func (pw *PhysicsWorld) Overlap(center cp.Vector, radius float64, categories, mask uint) []Entity {
	if pw == nil || pw.space == nil || radius <= 0 {
		return nil
	}
	seen := make(map[Entity]struct{})
	var out []Entity
	pw.space.BBQuery(cp.NewBBForCircle(center, radius), filterFor(categories, mask), func(shape *cp.Shape, data interface{}) {
		e, ok := pw.shapeToEntity[shape]
		if !ok {
			return
		}
		if _, dup := seen[e]; dup {
			return
		}
		if shape.PointQuery(center).Distance > radius {
			return
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}, nil)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (pw *PhysicsWorld) setupHandlers() {
	if pw == nil || pw.handlersReady || pw.space == nil {
		return
	}

	contactHandler := pw.space.NewCollisionHandler(collisionTypePlayer, collisionTypeEnemy)
	contactHandler.UserData = pw
	contactHandler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*PhysicsWorld)
		if !ok || world == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		ea, okA := world.shapeToEntity[shapeA]
		eb, okB := world.shapeToEntity[shapeB]
		if !okA || !okB {
			return true
		}
		// Shapes come back in handler order, but do not rely on it.
		if world.entityShapes[ea].categories&common.GroupEnemy != 0 {
			ea, eb = eb, ea
		}
		world.contacts = append(world.contacts, Contact{Player: ea, Enemy: eb})
		return true
	}

	pw.handlersReady = true
}
