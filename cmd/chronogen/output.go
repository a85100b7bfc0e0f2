package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/katalvlaran/chronogrid/generator"
	"github.com/katalvlaran/chronogrid/grid"
)

// zstdExt marks level files stored as zstd-compressed JSON.
const zstdExt = ".zst"

func encodeLevel(w io.Writer, level *generator.LevelData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(level)
}

// writeLevelFile writes level as JSON, compressed when path ends in .zst.
func writeLevelFile(path string, level *generator.LevelData) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if !strings.HasSuffix(path, zstdExt) {
		return encodeLevel(f, level)
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	if err := json.NewEncoder(enc).Encode(level); err != nil {
		enc.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return enc.Close()
}

// readLevelFile decodes a level written by writeLevelFile.
func readLevelFile(path string) (*generator.LevelData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, zstdExt) {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		r = dec
	}
	var level generator.LevelData
	if err := json.NewDecoder(r).Decode(&level); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if level.Past == nil || level.Future == nil {
		return nil, fmt.Errorf("%s: missing grids", path)
	}
	return &level, nil
}

var glyphs = [...]byte{
	grid.Empty:       '.',
	grid.Wall:        '#',
	grid.StartMarker: 'S',
	grid.Obstacle:    'O',
	grid.Goal:        'G',
	grid.Key:         'k',
	grid.Door:        'D',
	grid.Chest:       'C',
	grid.Lever:       'l',
	grid.LeverGate:   '|',
}

func glyph(t grid.Tile) byte {
	if int(t) < len(glyphs) {
		return glyphs[t]
	}
	return '?'
}

// renderLevel prints both timelines side by side followed by a summary.
func renderLevel(w io.Writer, level *generator.LevelData) error {
	past, future := level.RenderGrids()
	var b strings.Builder
	col := max(past.Width, len("past"))
	fmt.Fprintf(&b, "%-*s   %s\n", col, "past", "future")
	for y := 0; y < past.Height; y++ {
		for x := 0; x < past.Width; x++ {
			b.WriteByte(glyph(past.At(grid.Pos(x, y))))
		}
		b.WriteString(strings.Repeat(" ", col-past.Width+3))
		for x := 0; x < future.Width; x++ {
			b.WriteByte(glyph(future.At(grid.Pos(x, y))))
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "seed %d, %d moves, %d pushes, %d attempts", level.Seed, level.MinMoves, level.BoxesPushed, level.Attempts)
	if level.Fallback {
		b.WriteString(", fallback room")
	}
	b.WriteByte('\n')
	fmt.Fprintf(&b, "hint: %s\n", level.Hint())
	_, err := io.WriteString(w, b.String())
	return err
}
