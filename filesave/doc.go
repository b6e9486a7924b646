// Package filesave implements collab.SaveProvider over plain JSON files on
// disk: one file per worker's resumable thread state, one file for the
// latest depth/score record, and one small map recording accumulated
// compute time per puzzle name across resumes.
//
// A chess GUI's own persistence code (hailam-chessplay/internal/storage)
// reaches for BadgerDB because it is backing an interactive game's
// preferences and win/loss history under constant read/write load from a
// GUI. A solver's resumable state is a handful of infrequent, modest JSON
// snapshots; encoding/json plus the standard os/filepath directory
// conventions from that same package (paths.go's GetDataDir) cover this
// without the embedded-database machinery, so no third-party dependency
// is wired here (see DESIGN.md).
package filesave
