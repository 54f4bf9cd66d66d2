package mines

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// Params describe a square board of Size×Size cells.
type Params struct {
	Size, MineCount int
}

func (p Params) Cells() int {
	return p.Size * p.Size
}

// Safe is the number of cells that have to be revealed to win.
func (p Params) Safe() int {
	return p.Cells() - p.MineCount
}

func (p Params) Validate() error {
	if p.Size < 1 {
		return fmt.Errorf("%w: size must be positive, got %d", ErrInvalidParams, p.Size)
	}
	if p.MineCount < 0 {
		return fmt.Errorf("%w: negative mine count %d", ErrInvalidParams, p.MineCount)
	}
	if p.MineCount > p.Cells()-1 {
		return fmt.Errorf(
			"%w: %d mines do not fit on a %dx%d board",
			ErrInvalidParams, p.MineCount, p.Size, p.Size,
		)
	}
	return nil
}

func (p Params) String() string {
	return fmt.Sprintf("%dx%d:%d", p.Size, p.Size, p.MineCount)
}

// ParseParams is the inverse of [Params.String].
func ParseParams(s string) (Params, error) {
	dims, mines, ok := strings.Cut(s, ":")
	if !ok {
		return Params{}, fmt.Errorf(`%w: malformed params "%s"`, ErrInvalidParams, s)
	}
	ws, hs, ok := strings.Cut(dims, "x")
	if !ok {
		return Params{}, fmt.Errorf(`%w: malformed params "%s"`, ErrInvalidParams, s)
	}
	var nums [3]int
	for i, part := range []string{ws, hs, mines} {
		n, err := strconv.Atoi(part)
		if err != nil {
			return Params{}, fmt.Errorf(`%w: malformed params "%s"`, ErrInvalidParams, s)
		}
		nums[i] = n
	}
	if nums[0] != nums[1] {
		return Params{}, fmt.Errorf("%w: board must be square, got %dx%d", ErrInvalidParams, nums[0], nums[1])
	}
	p := Params{Size: nums[0], MineCount: nums[2]}
	return p, p.Validate()
}

func (p Params) PointInBounds(x, y int) bool {
	return 0 <= x && x < p.Size && 0 <= y && y < p.Size
}

func (p Params) index(x, y int) int {
	return y*p.Size + x
}

func (p Params) point(i int) (x, y int) {
	return i % p.Size, i / p.Size
}

// Neighbors yields the indices of the in-bounds cells around cell i.
func (p Params) Neighbors(i int) iter.Seq[int] {
	return func(yield func(int) bool) {
		x, y := p.point(i)
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				if !p.PointInBounds(x+dx, y+dy) {
					continue
				}
				if !yield(p.index(x+dx, y+dy)) {
					return
				}
			}
		}
	}
}
