// Package collab defines the external collaborator contracts the search
// engine consumes but never implements itself: persistence of thread
// state and records, structured logging, and optional visualization.
// The engine depends only on these interfaces; concrete, thin reference
// implementations live in filesave and termviz.
//
// Every method here may be called from the engine's hot path, so
// implementations that do I/O are expected to fail soft: the engine
// logs and continues rather than aborting a search over a save error.
package collab
