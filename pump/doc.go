// Package pump implements the session layer and command surface for a
// Cavro-class syringe pump/valve instrument.
//
// A Pump owns exactly one transport channel for its lifetime and enforces
// strict request/response alternation: the device processes one command at a
// time and reports status in-band, so command N's reply is always decoded
// before command N+1 is encoded. An internal mutex serializes the public
// command methods; the polling discipline (ready checks before every
// mutating command, fixed-interval status polls while busy) is handled
// inside the driver.
//
// All blocking operations take a context.Context. Ready polling is unbounded
// by default, matching the instrument's contract that it eventually becomes
// ready; callers can bound waits through the context or the wait-budget
// configuration option.
package pump
