package server

import "errors"

// ErrInvalidSession is returned when a session submits a choice before it
// has claimed a side/player seat.
var ErrInvalidSession = errors.New("invalid session")

// ErrSessionAlreadyBound is returned when a session that has already
// claimed a side/player slot tries to claim another.
var ErrSessionAlreadyBound = errors.New("session already bound to a side")

// ErrSlotTaken is returned when a session tries to bind to a side/player
// slot another session already holds.
var ErrSlotTaken = errors.New("side/player slot already claimed")

// ErrUnknownChoiceKind is returned when a submitted choice's "kind" field
// is not one of the kinds choiceKindFromString accepts: move, switch,
// item, escape, forfeit, pass. There is no learnmove or forgetmove kind.
var ErrUnknownChoiceKind = errors.New("unknown choice kind")
