package filesave

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/katalvlaran/eternity/collab"
	"github.com/katalvlaran/eternity/history"
	"github.com/katalvlaran/eternity/puzzle"
)

// Provider implements collab.SaveProvider by writing one JSON file per
// worker's thread state, one JSON file for the latest record, and one
// small compute-time map, all under a single directory.
//
// Grounded on hailam-chessplay/internal/storage/paths.go's directory
// resolution shape (a single auto-created directory),
// adapted from Badger's key-value layout to plain files since Provider's
// writes are infrequent per-worker snapshots, not a live game's
// read/write-heavy preference store.
type Provider struct {
	dir string
}

// NewProvider creates (if needed) dir and returns a Provider rooted there.
func NewProvider(dir string) (*Provider, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &Provider{dir: dir}, nil
}

func (p *Provider) threadFile(threadID int) string {
	return filepath.Join(p.dir, fmt.Sprintf("thread-%d.json", threadID))
}

func (p *Provider) recordFile() string {
	return filepath.Join(p.dir, "record.json")
}

func (p *Provider) computeTimeFile() string {
	return filepath.Join(p.dir, "compute-time.json")
}

// SaveThreadState implements collab.SaveProvider.
func (p *Provider) SaveThreadState(board *puzzle.Board, used *puzzle.UsedSet, hist []history.Record, depth, threadID int, seed int64) error {
	dto := threadStateDTO{
		Board:   boardToDTO(board),
		UsedIDs: used.ToSlice(),
		Depth:   depth,
		Seed:    seed,
		History: hist,
	}
	return writeJSON(p.threadFile(threadID), dto)
}

// LoadThreadState implements collab.SaveProvider.
func (p *Provider) LoadThreadState(threadID int, tiles *puzzle.TileSet) (*collab.ThreadState, bool, error) {
	var dto threadStateDTO
	found, err := readJSON(p.threadFile(threadID), &dto)
	if err != nil || !found {
		return nil, found, err
	}

	board, err := dtoToBoard(dto.Board)
	if err != nil {
		return nil, true, err
	}
	used := puzzle.NewUsedSet(tiles.MaxID())
	for _, id := range dto.UsedIDs {
		used.Add(id)
	}

	return &collab.ThreadState{
		Board:   board,
		Used:    used,
		Depth:   dto.Depth,
		Seed:    dto.Seed,
		History: dto.History,
	}, true, nil
}

// HasThreadState implements collab.SaveProvider.
func (p *Provider) HasThreadState(threadID int) bool {
	_, err := os.Stat(p.threadFile(threadID))
	return err == nil
}

// SaveRecord implements collab.SaveProvider.
func (p *Provider) SaveRecord(board *puzzle.Board, used *puzzle.UsedSet, totalTiles int, depth int) error {
	dto := recordDTO{
		Board:      boardToDTO(board),
		UsedIDs:    used.ToSlice(),
		TotalTiles: totalTiles,
		Depth:      depth,
	}
	return writeJSON(p.recordFile(), dto)
}

// ReadTotalComputeTime implements collab.SaveProvider.
func (p *Provider) ReadTotalComputeTime(puzzleName string) (time.Duration, error) {
	m := map[string]int64{}
	found, err := readJSON(p.computeTimeFile(), &m)
	if err != nil || !found {
		return 0, err
	}
	return time.Duration(m[puzzleName]), nil
}

// RecordComputeTime accumulates d into puzzleName's stored compute time.
// It is not part of collab.SaveProvider (that interface only reads);
// callers that want resumed searches to carry accumulated elapsed time
// forward call this once their solve call returns.
func (p *Provider) RecordComputeTime(puzzleName string, d time.Duration) error {
	m := map[string]int64{}
	if _, err := readJSON(p.computeTimeFile(), &m); err != nil {
		return err
	}
	m[puzzleName] += int64(d)
	return writeJSON(p.computeTimeFile(), m)
}
