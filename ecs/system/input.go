package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/skulls/common"
	"github.com/milk9111/skulls/ecs"
	"github.com/milk9111/skulls/ecs/component"
)

type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionStrafeLeft
	ActionStrafeRight
	ActionTurnLeft
	ActionTurnRight
	ActionFire
	ActionPause
	ActionStart
	actionCount
)

// InputSource is the device layer: which logical actions are held, and which
// changed since the previous frame. TurnAxis is an analog turn in [-1, 1],
// positive turning left.
type InputSource interface {
	Pressed(a Action) bool
	JustPressed(a Action) bool
	JustReleased(a Action) bool
	TurnAxis() float64
}

// ActionSnapshot is an InputSource captured for one frame.
type ActionSnapshot struct {
	Held [actionCount]bool
	Down [actionCount]bool
	Up   [actionCount]bool
	Turn float64
}

func (s *ActionSnapshot) Pressed(a Action) bool {
	return s != nil && a >= 0 && a < actionCount && s.Held[a]
}

func (s *ActionSnapshot) JustPressed(a Action) bool {
	return s != nil && a >= 0 && a < actionCount && s.Down[a]
}

func (s *ActionSnapshot) JustReleased(a Action) bool {
	return s != nil && a >= 0 && a < actionCount && s.Up[a]
}

func (s *ActionSnapshot) TurnAxis() float64 {
	if s == nil {
		return 0
	}
	return s.Turn
}

// Press marks a as held and just pressed.
func (s *ActionSnapshot) Press(a Action) {
	s.Held[a] = true
	s.Down[a] = true
}

// Release marks a as released this frame.
func (s *ActionSnapshot) Release(a Action) {
	s.Held[a] = false
	s.Up[a] = true
}

// Advance starts a new frame: held actions stay held, edges clear.
func (s *ActionSnapshot) Advance() {
	s.Down = [actionCount]bool{}
	s.Up = [actionCount]bool{}
}

// InputAggregator folds every rendered frame's input into one snapshot that
// the next fixed tick consumes. Movement and turn are the latest frame's;
// edges stick until a tick reads them.
type InputAggregator struct {
	movement cp.Vector
	turn     float64

	firePressed      bool
	fireJustPressed  bool
	fireJustReleased bool

	consumed bool
}

// Collect records one frame of input. turnRate converts the turn input to
// turns per second.
func (a *InputAggregator) Collect(src InputSource, turnRate float64) {
	if a == nil || src == nil {
		return
	}

	var move cp.Vector
	if src.Pressed(ActionMoveForward) {
		move.X++
	}
	if src.Pressed(ActionMoveBackward) {
		move.X--
	}
	if src.Pressed(ActionStrafeLeft) {
		move.Y++
	}
	if src.Pressed(ActionStrafeRight) {
		move.Y--
	}
	a.movement = common.NormalizeOrZero(move)

	turn := src.TurnAxis()
	if src.Pressed(ActionTurnLeft) {
		turn++
	}
	if src.Pressed(ActionTurnRight) {
		turn--
	}
	a.turn = common.Clamp(turn, -1, 1) * turnRate

	a.firePressed = src.Pressed(ActionFire)
	a.fireJustPressed = a.fireJustPressed || src.JustPressed(ActionFire)
	a.fireJustReleased = a.fireJustReleased || src.JustReleased(ActionFire)
}

// Snapshot returns the input for the next tick. The first call after a
// Collect carries the edges; later calls in the same frame do not.
func (a *InputAggregator) Snapshot() component.Input {
	in := component.Input{
		Movement:    a.movement,
		Turn:        a.turn,
		FirePressed: a.firePressed,
	}
	if !a.consumed {
		in.FireJustPressed = a.fireJustPressed
		in.FireJustReleased = a.fireJustReleased
		a.consumed = true
	}
	return in
}

// EndFrame clears the accumulated input if at least one tick consumed it.
func (a *InputAggregator) EndFrame() {
	if !a.consumed {
		return
	}
	*a = InputAggregator{}
}

// InputSystem copies the aggregated input onto every controlled entity.
type InputSystem struct {
	Aggregator *InputAggregator
}

func NewInputSystem(agg *InputAggregator) *InputSystem {
	return &InputSystem{Aggregator: agg}
}

func (s *InputSystem) Update(w *ecs.World, ctx *Context) {
	if w == nil || s.Aggregator == nil {
		return
	}
	in := s.Aggregator.Snapshot()
	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		*input = in
	})
}
