// Package core defines the record model shared by every csplog package.
//
// A log event is an Entry: a timestamp, a Level, the name of the sink that
// produced it, a message, optional structured Fields and an optional error.
// Entries are pooled; callers obtain one with GetEntry and hand it back with
// PutEntry after every handler attached to the sink has consumed it.
//
// AllLevel sits below every severity and is the level a bootstrapped sink is
// set to so that it captures everything.
package core
