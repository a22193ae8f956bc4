package model

// EventInitialize is notified once an instance finished initialization.
const EventInitialize = "initialize"

// Hookable receives lifecycle notifications. Notifications are fire and
// forget: the caller neither waits on nor reacts to what handlers do.
type Hookable interface {
	Notify(event string, inst *Instance)
}

// Validatable checks an instance. Rule evaluation lives with the
// implementation; the model only delegates to it.
type Validatable interface {
	Validate(inst *Instance) error
}

// HookFunc handles one lifecycle event.
type HookFunc func(inst *Instance)

// Hooks is a Hookable dispatching events to registered handlers in
// registration order.
type Hooks struct {
	handlers map[string][]HookFunc
}

// NewHooks creates an empty dispatcher.
func NewHooks() *Hooks {
	return &Hooks{handlers: make(map[string][]HookFunc)}
}

// On registers fn for event.
func (h *Hooks) On(event string, fn HookFunc) *Hooks {
	h.handlers[event] = append(h.handlers[event], fn)
	return h
}

// Notify calls every handler registered for event.
func (h *Hooks) Notify(event string, inst *Instance) {
	for _, fn := range h.handlers[event] {
		fn(inst)
	}
}

// ValidatorFunc adapts a function to Validatable.
type ValidatorFunc func(inst *Instance) error

func (f ValidatorFunc) Validate(inst *Instance) error {
	return f(inst)
}
