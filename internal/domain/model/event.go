package model

import "time"

// ModalID names a top-level modal slot.
type ModalID string

const (
	ModalSubmission ModalID = "submission"
	ModalResults    ModalID = "results"
	ModalDish       ModalID = "dish"
	ModalRestaurant ModalID = "restaurant"
	ModalGroup      ModalID = "group"
	ModalUser       ModalID = "user"
	ModalNewList    ModalID = "new_list"
	ModalNewGroup   ModalID = "new_group"
)

// EventKind names what an Event asks the controller to do.
type EventKind string

const (
	// EventCloseElapsed fires when a closing modal's exit delay has passed.
	EventCloseElapsed EventKind = "close_elapsed"
)

// Event is a discrete trigger delivered to the controller by the event loop.
type Event struct {
	ID         string    // unique id, for logs
	Kind       EventKind // what happened
	Modal      ModalID   // slot the event targets
	Generation uint64    // slot generation the event was scheduled against
	TS         time.Time // schedule time
}
