package system

// Events is the controller's typed event surface. Handlers are invoked
// synchronously inside the emitting step, before Update returns, in no
// guaranteed order. Subscribe methods return an unsubscribe func that is
// safe to call more than once.
type Events struct {
	nextID           int
	groundedChanged  map[int]func(grounded bool, impactSpeed float64)
	jumped           map[int]func()
	dashChanged      map[int]func(dashing bool)
	wallSlideChanged map[int]func(sliding bool)
}

// NewEvents creates an empty event surface.
func NewEvents() *Events {
	return &Events{
		groundedChanged:  make(map[int]func(bool, float64)),
		jumped:           make(map[int]func()),
		dashChanged:      make(map[int]func(bool)),
		wallSlideChanged: make(map[int]func(bool)),
	}
}

// OnGroundedChanged fires on ground contact transitions. On landing,
// impactSpeed is the absolute vertical speed at the step before contact;
// on leaving ground it is 0.
func (e *Events) OnGroundedChanged(fn func(grounded bool, impactSpeed float64)) func() {
	id := e.nextID
	e.nextID++
	e.groundedChanged[id] = fn
	return func() { delete(e.groundedChanged, id) }
}

// OnJumped fires once per executed jump (ground, coyote or wall).
func (e *Events) OnJumped(fn func()) func() {
	id := e.nextID
	e.nextID++
	e.jumped[id] = fn
	return func() { delete(e.jumped, id) }
}

// OnDashChanged fires when a dash begins or expires.
func (e *Events) OnDashChanged(fn func(dashing bool)) func() {
	id := e.nextID
	e.nextID++
	e.dashChanged[id] = fn
	return func() { delete(e.dashChanged, id) }
}

// OnWallSlideChanged fires when wall sliding starts or stops.
func (e *Events) OnWallSlideChanged(fn func(sliding bool)) func() {
	id := e.nextID
	e.nextID++
	e.wallSlideChanged[id] = fn
	return func() { delete(e.wallSlideChanged, id) }
}

func (e *Events) emitGroundedChanged(grounded bool, impactSpeed float64) {
	for _, fn := range e.groundedChanged {
		fn(grounded, impactSpeed)
	}
}

func (e *Events) emitJumped() {
	for _, fn := range e.jumped {
		fn()
	}
}

func (e *Events) emitDashChanged(dashing bool) {
	for _, fn := range e.dashChanged {
		fn(dashing)
	}
}

func (e *Events) emitWallSlideChanged(sliding bool) {
	for _, fn := range e.wallSlideChanged {
		fn(sliding)
	}
}
