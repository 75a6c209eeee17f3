package ecs

import (
	"errors"
	"fmt"

	"github.com/milk9111/skulls/ecs/component"
)

var (
	ErrSingletonMissing   = errors.New("ecs: singleton missing")
	ErrSingletonAmbiguous = errors.New("ecs: more than one singleton")
)

// World owns entities and their components. It is not safe for concurrent
// use; the simulation mutates it from a single goroutine.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]componentStore
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]componentStore)}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and invalidates the handle.
// Returns false if e was already dead.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity in slot order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, w.entities.count)
	w.entities.each(func(e Entity) { out = append(out, e) })
	return out
}

// Len returns the number of live entities.
func Len(w *World) int {
	if w == nil {
		return 0
	}
	return w.entities.count
}

func storeFor[T any](w *World, kind component.ComponentKind[T], create bool) *sparseSet[T] {
	if w == nil || !kind.Valid() {
		return nil
	}
	if s, ok := w.stores[kind.ID()]; ok {
		return s.(*sparseSet[T])
	}
	if !create {
		return nil
	}
	s := newSparseSet[T]()
	w.stores[kind.ID()] = s
	return s
}

func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !IsAlive(w, e) {
		return fmt.Errorf("add %T to %s: %w", *value, e, component.ErrEntityNotAlive)
	}
	storeFor(w, kind, true).set(e, value)
	return nil
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	s := storeFor(w, kind, false)
	if s == nil {
		return false
	}
	return s.remove(e)
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	s := storeFor(w, kind, false)
	return s != nil && IsAlive(w, e) && s.has(e)
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	s := storeFor(w, kind, false)
	if s == nil || !IsAlive(w, e) {
		return nil, false
	}
	return s.get(e)
}

// Count returns how many live entities carry the component.
func Count[T any](w *World, kind component.ComponentKind[T]) int {
	s := storeFor(w, kind, false)
	if s == nil {
		return 0
	}
	return s.len()
}

// Single returns the only entity carrying kind. It reports
// ErrSingletonMissing or ErrSingletonAmbiguous otherwise.
func Single[T any](w *World, kind component.ComponentKind[T]) (Entity, *T, error) {
	s := storeFor(w, kind, false)
	if s == nil || s.len() == 0 {
		return 0, nil, ErrSingletonMissing
	}
	if s.len() > 1 {
		return 0, nil, fmt.Errorf("%w: found %d", ErrSingletonAmbiguous, s.len())
	}
	return s.dense[0], s.values[0], nil
}
