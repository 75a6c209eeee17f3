package ecs

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/skulls/common"
)

const (
	testSkullCategories = common.GroupEnemy
	testSkullMask       = common.GroupPlayer | common.GroupEnemy | common.GroupShotgun | common.GroupExplosion
	testPlayerMask      = common.GroupWall | common.GroupEnemy | common.GroupExplosion
)

func TestShapeCastNearestEnemy(t *testing.T) {
	w := NewWorld()
	pw := NewPhysicsWorld()

	near := CreateEntity(w)
	far := CreateEntity(w)
	pw.AddCircle(far, cp.Vector{X: 20}, 0.5, testSkullCategories, testSkullMask)
	pw.AddCircle(near, cp.Vector{X: 10}, 0.5, testSkullCategories, testSkullMask)

	tests := []struct {
		name    string
		dir     cp.Vector
		maxDist float64
		want    Entity
		hit     bool
	}{
		{"along_x", cp.Vector{X: 1}, 200, near, true},
		{"unnormalised_dir", cp.Vector{X: 5}, 200, near, true},
		{"away", cp.Vector{X: -1}, 200, 0, false},
		{"zero_dir", cp.Vector{}, 200, 0, false},
		{"out_of_range", cp.Vector{X: 1}, 5, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hit, ok := pw.ShapeCast(cp.Vector{}, tc.dir, 0.3, tc.maxDist, common.GroupShotgun, common.GroupEnemy)
			if ok != tc.hit {
				t.Fatalf("expected hit=%v, got %v (%+v)", tc.hit, ok, hit)
			}
			if !ok {
				return
			}
			if hit.Entity != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, hit.Entity)
			}
			// Swept circle of 0.3 touches the 0.5 circle at x=10 at about 9.2.
			if math.Abs(hit.Distance-9.2) > 0.05 {
				t.Fatalf("expected distance near 9.2, got %v", hit.Distance)
			}
		})
	}
}

func TestShapeCastIgnoresFilteredShapes(t *testing.T) {
	w := NewWorld()
	pw := NewPhysicsWorld()

	player := CreateEntity(w)
	pw.AddCircle(player, cp.Vector{X: 5}, 0.5, common.GroupPlayer, testPlayerMask)
	pw.AddStaticBox(cp.Vector{X: 8}, 1, 10, common.GroupWall, common.GroupPlayer)

	skull := CreateEntity(w)
	pw.AddCircle(skull, cp.Vector{X: 12}, 0.5, testSkullCategories, testSkullMask)

	hit, ok := pw.ShapeCast(cp.Vector{}, cp.Vector{X: 1}, 0.3, 200, common.GroupShotgun, common.GroupEnemy)
	if !ok || hit.Entity != skull {
		t.Fatalf("expected the cast to pass the player and wall and hit the skull, got %+v ok=%v", hit, ok)
	}
}

func TestOverlap(t *testing.T) {
	w := NewWorld()
	pw := NewPhysicsWorld()

	inside := CreateEntity(w)
	player := CreateEntity(w)
	outside := CreateEntity(w)
	pw.AddCircle(inside, cp.Vector{X: 1}, 0.5, testSkullCategories, testSkullMask)
	pw.AddCircle(player, cp.Vector{Y: -2}, 0.5, common.GroupPlayer, testPlayerMask)
	pw.AddCircle(outside, cp.Vector{X: 10}, 0.5, testSkullCategories, testSkullMask)
	pw.AddStaticBox(cp.Vector{}, 1, 1, common.GroupWall, common.GroupPlayer)

	got := pw.Overlap(cp.Vector{}, 2.5, common.GroupExplosion, common.GroupEnemy|common.GroupPlayer)
	if len(got) != 2 || got[0] != inside || got[1] != player {
		t.Fatalf("expected [%s %s], got %v", inside, player, got)
	}

	if got := pw.Overlap(cp.Vector{}, 0, common.GroupExplosion, common.GroupEnemy); got != nil {
		t.Fatalf("zero radius should find nothing, got %v", got)
	}
}

func TestOverlapUsesShapeDistance(t *testing.T) {
	tests := []struct {
		name string
		pos  cp.Vector
		want bool
	}{
		// Inside the query's bounding box but 2.61 from the centre.
		{"box_corner", cp.Vector{X: 2.2, Y: 2.2}, false},
		// Centre outside the radius, edge inside it.
		{"edge_inside", cp.Vector{X: 2.8}, true},
		{"centre_inside", cp.Vector{Y: 1.5}, true},
		{"far", cp.Vector{X: 4}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWorld()
			pw := NewPhysicsWorld()
			e := CreateEntity(w)
			pw.AddCircle(e, tc.pos, 0.5, testSkullCategories, testSkullMask)

			got := pw.Overlap(cp.Vector{}, 2.5, common.GroupExplosion, common.GroupEnemy)
			if found := len(got) == 1 && got[0] == e; found != tc.want {
				t.Fatalf("expected found=%v, got %v", tc.want, got)
			}
		})
	}
}

func TestRemoveEntity(t *testing.T) {
	w := NewWorld()
	pw := NewPhysicsWorld()
	e := CreateEntity(w)
	pw.AddCircle(e, cp.Vector{}, 0.5, testSkullCategories, testSkullMask)
	if pw.BodyCount() != 1 {
		t.Fatalf("expected one body")
	}

	pw.RemoveEntity(e)
	pw.RemoveEntity(e)
	if pw.BodyCount() != 0 {
		t.Fatalf("expected no bodies after removal")
	}
	if _, ok := pw.Body(e); ok {
		t.Fatalf("removed entity still has a body")
	}
	if got := pw.Overlap(cp.Vector{}, 1, common.GroupExplosion, common.GroupEnemy); len(got) != 0 {
		t.Fatalf("removed shape still found by overlap: %v", got)
	}
}

func TestStepIntegratesVelocityAndReportsContacts(t *testing.T) {
	w := NewWorld()
	pw := NewPhysicsWorld()

	player := CreateEntity(w)
	skull := CreateEntity(w)
	pw.AddCircle(player, cp.Vector{}, 0.5, common.GroupPlayer, testPlayerMask)
	body, _ := pw.AddCircle(skull, cp.Vector{X: 3}, 0.5, testSkullCategories, testSkullMask)
	body.SetVelocityVector(cp.Vector{X: -6})

	var contacts []Contact
	for range 60 {
		pw.Step(common.TickDt)
		contacts = append(contacts, pw.DrainContacts()...)
	}

	if len(contacts) == 0 {
		t.Fatalf("expected a player/skull contact")
	}
	if contacts[0].Player != player || contacts[0].Enemy != skull {
		t.Fatalf("contact sides swapped: %+v", contacts[0])
	}
	if pw.DrainContacts() != nil {
		t.Fatalf("drain should empty the contact buffer")
	}
}

func TestWallsBlockOnlyThePlayer(t *testing.T) {
	w := NewWorld()
	pw := NewPhysicsWorld()
	// Same thickness as an arena tile, spanning x in [2.5, 6.5].
	pw.AddStaticBox(cp.Vector{X: 4.5}, 2, 5, common.GroupWall, common.GroupPlayer)

	player := CreateEntity(w)
	skull := CreateEntity(w)
	pb, _ := pw.AddCircle(player, cp.Vector{Y: -2}, 0.5, common.GroupPlayer, testPlayerMask)
	sb, _ := pw.AddCircle(skull, cp.Vector{Y: 2}, 0.5, testSkullCategories, testSkullMask)

	desired := cp.Vector{X: 5}
	steer := func(b *cp.Body) {
		v := b.Velocity()
		b.SetVelocityVector(v.Add(desired.Sub(v).Mult(10 * common.TickDt)))
	}

	maxX := math.Inf(-1)
	for range 180 {
		steer(pb)
		steer(sb)
		pw.Step(common.TickDt)
		maxX = math.Max(maxX, pb.Position().X)
	}

	// Resting against the face puts the centre at 2.0; the solver may let
	// it sink in a little but never past the face.
	if maxX >= 2.5 {
		t.Fatalf("player went through the wall: max x=%v", maxX)
	}
	if x := sb.Position().X; x < 7 {
		t.Fatalf("skull should fly through walls: x=%v", x)
	}
}
