package gobang

import (
	game_constants "Gobang/constants/game"
	"Gobang/models"
	"errors"
)

var (
	ErrOutOfBounds  = errors.New("coordinates outside the board")
	ErrCellOccupied = errors.New("cell already occupied")
	ErrBadStone     = errors.New("stone must belong to seat 0 or 1")
)

// The four axes a five can lie on: horizontal, vertical and both diagonals
var axes = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

// Board is the state of one game. It is rebuilt from a room's grid whenever a move
// has to be judged and thrown away afterwards.
type Board struct {
	cells models.Grid
}

func NewBoard() *Board {
	return &Board{cells: models.NewGrid()}
}

// FromGrid replays every occupied cell of grid onto an empty board
func FromGrid(grid models.Grid) (*Board, error) {
	b := NewBoard()
	for y := range grid {
		for x := range grid[y] {
			if grid[y][x] == game_constants.EmptyCell {
				continue
			}
			if err := b.Place(x, y, grid[y][x]); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}

func InBounds(x, y int) bool {
	return x >= 0 && x < game_constants.BoardSize && y >= 0 && y < game_constants.BoardSize
}

// Place puts a stone of player on (x, y)
func (b *Board) Place(x, y, player int) error {
	if !InBounds(x, y) {
		return ErrOutOfBounds
	}
	if player < 0 || player >= game_constants.SeatCount {
		return ErrBadStone
	}
	if b.cells[y][x] != game_constants.EmptyCell {
		return ErrCellOccupied
	}
	b.cells[y][x] = player
	return nil
}

// At returns the content of (x, y), EmptyCell when out of bounds
func (b *Board) At(x, y int) int {
	if !InBounds(x, y) {
		return game_constants.EmptyCell
	}
	return b.cells[y][x]
}

// HasWinAt reports whether the stone of player on (x, y) is part of a run of at
// least WinLength on any axis. Every axis is checked.
func (b *Board) HasWinAt(x, y, player int) bool {
	if b.At(x, y) != player {
		return false
	}
	win := false
	for _, axis := range axes {
		run := 1 + b.count(x, y, axis[0], axis[1], player) + b.count(x, y, -axis[0], -axis[1], player)
		if run >= game_constants.WinLength {
			win = true
		}
	}
	return win
}

// count walks from (x, y) in direction (dx, dy) and counts the contiguous stones of player
func (b *Board) count(x, y, dx, dy, player int) int {
	n := 0
	for cx, cy := x+dx, y+dy; InBounds(cx, cy) && b.cells[cy][cx] == player; cx, cy = cx+dx, cy+dy {
		n++
	}
	return n
}

func (b *Board) IsFull() bool {
	for y := range b.cells {
		for x := range b.cells[y] {
			if b.cells[y][x] == game_constants.EmptyCell {
				return false
			}
		}
	}
	return true
}

// Grid returns a copy of the cells
func (b *Board) Grid() models.Grid {
	return b.cells
}
