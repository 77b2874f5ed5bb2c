// Package breakout implements a Breakout brick breaker game.
package breakout

import (
	"github.com/vovakirdan/quad-arcade/internal/config"
	"github.com/vovakirdan/quad-arcade/internal/core"
)

// Block is one destructible brick.
type Block struct {
	core.Entity
	Points int
	HP     int // Hits left; the block dies at zero
}

// Hard reports whether the block needs more than one hit.
func (b Block) Hard() bool {
	return b.HP > 1
}

// ParseLayout builds blocks from an ASCII map, one string per row.
// Characters:
//
//	'#' = normal block (base points)
//	'.' = gap
//	'1'-'9' = block worth digit * base points
//	'H' = hard block (2 HP, double points)
//
// Anything else is a gap.
func ParseLayout(lines []string, cfg config.BreakoutBlocks, basePoints int) []Block {
	var blocks []Block
	for row, line := range lines {
		for col := 0; col < len(line); col++ {
			ch := line[col]
			var points, hp int
			switch {
			case ch == '#':
				points, hp = basePoints, 1
			case ch >= '1' && ch <= '9':
				points, hp = int(ch-'0')*basePoints, 1
			case ch == 'H' || ch == 'h':
				points, hp = 2*basePoints, 2
			default:
				continue
			}
			blocks = append(blocks, newBlock(row, col, cfg, points, hp))
		}
	}
	return blocks
}

// FullRows builds rows of normal blocks spanning the field width.
func FullRows(fieldW float64, cfg config.BreakoutBlocks, basePoints int) []Block {
	cols := int(fieldW / cfg.Size)
	blocks := make([]Block, 0, cols*cfg.Rows)
	for row := 0; row < cfg.Rows; row++ {
		for col := 0; col < cols; col++ {
			blocks = append(blocks, newBlock(row, col, cfg, basePoints, 1))
		}
	}
	return blocks
}

func newBlock(row, col int, cfg config.BreakoutBlocks, points, hp int) Block {
	pos := core.V(float64(col)*cfg.Size+cfg.Padding, float64(row)*cfg.Size+cfg.Padding)
	size := core.V(cfg.Size-cfg.Padding, cfg.Size-cfg.Padding)
	return Block{Entity: core.NewEntity(pos, size), Points: points, HP: hp}
}

// buildBlocks uses the configured layout, or full rows when it is empty.
func buildBlocks(cfg config.BreakoutConfig) []Block {
	if len(cfg.Blocks.Layout) > 0 {
		return ParseLayout(cfg.Blocks.Layout, cfg.Blocks, cfg.Gameplay.PointsPerBlock)
	}
	return FullRows(cfg.Field.Width, cfg.Blocks, cfg.Gameplay.PointsPerBlock)
}

// compact drops dead blocks in place.
func compact(blocks []Block) []Block {
	alive := blocks[:0]
	for _, b := range blocks {
		if b.Alive {
			alive = append(alive, b)
		}
	}
	return alive
}
