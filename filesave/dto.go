package filesave

import (
	"encoding/json"
	"os"

	"github.com/katalvlaran/eternity/history"
	"github.com/katalvlaran/eternity/puzzle"
)

// cellDTO is one board cell's JSON-safe representation. puzzle.Board keeps
// its cell slice unexported, so DTOs are built through its public
// accessors (Rows, Cols, At, IsFixed) rather than by reflecting over the
// struct directly.
type cellDTO struct {
	Empty    bool   `json:"empty"`
	Fixed    bool   `json:"fixed,omitempty"`
	TileID   int    `json:"tile_id,omitempty"`
	Rotation int    `json:"rotation,omitempty"`
	Edges    [4]int `json:"edges,omitempty"`
}

type boardDTO struct {
	Rows  int         `json:"rows"`
	Cols  int         `json:"cols"`
	Cells [][]cellDTO `json:"cells"`
}

func boardToDTO(b *puzzle.Board) boardDTO {
	dto := boardDTO{Rows: b.Rows(), Cols: b.Cols(), Cells: make([][]cellDTO, b.Rows())}
	for r := 0; r < b.Rows(); r++ {
		dto.Cells[r] = make([]cellDTO, b.Cols())
		for c := 0; c < b.Cols(); c++ {
			p := b.At(r, c)
			if p == nil {
				dto.Cells[r][c] = cellDTO{Empty: true}
				continue
			}
			var edges [4]int
			for i, e := range p.Edges {
				edges[i] = int(e)
			}
			dto.Cells[r][c] = cellDTO{
				Fixed:    b.IsFixed(r, c),
				TileID:   p.TileID,
				Rotation: p.Rotation,
				Edges:    edges,
			}
		}
	}
	return dto
}

func dtoToBoard(dto boardDTO) (*puzzle.Board, error) {
	board, err := puzzle.NewBoard(dto.Rows, dto.Cols)
	if err != nil {
		return nil, err
	}
	for r := 0; r < dto.Rows; r++ {
		for c := 0; c < dto.Cols; c++ {
			cell := dto.Cells[r][c]
			if cell.Empty {
				continue
			}
			var edges [4]puzzle.Color
			for i, e := range cell.Edges {
				edges[i] = puzzle.Color(e)
			}
			placement := puzzle.Placement{TileID: cell.TileID, Rotation: cell.Rotation, Edges: edges}
			if cell.Fixed {
				err = board.Fix(r, c, placement)
			} else {
				err = board.Set(r, c, placement)
			}
			if err != nil {
				return nil, err
			}
		}
	}
	return board, nil
}

type threadStateDTO struct {
	Board   boardDTO         `json:"board"`
	UsedIDs []int            `json:"used_ids"`
	Depth   int              `json:"depth"`
	Seed    int64            `json:"seed"`
	History []history.Record `json:"history"`
}

type recordDTO struct {
	Board      boardDTO `json:"board"`
	UsedIDs    []int    `json:"used_ids"`
	TotalTiles int      `json:"total_tiles"`
	Depth      int      `json:"depth"`
}

// writeJSON atomically-enough writes v to path: marshal then truncate-write,
// matching the single-file-per-record layout the rest of this package uses
// instead of a transactional KV store.
func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// readJSON reads and unmarshals path into v. found is false, with a nil
// error, if path does not exist yet.
func readJSON(path string, v interface{}) (found bool, err error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, err
	}
	return true, nil
}
