package main

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	ErrMalformedLine = errors.New("malformed line")
	ErrUnknownLine   = errors.New("unrecognized line")
	ErrVertexIndex   = errors.New("vertex index out of range")
)

//go:embed maps/default.txt
var defaultMap string

// loadError reports the line a map load failed on.
type loadError struct {
	line int
	err  error
}

func (e *loadError) Error() string { return fmt.Sprintf("line %d: %v", e.line, e.err) }

func (e *loadError) Unwrap() error { return e.err }

// loadWorld parses the line-oriented map format:
//
//	# comment
//	vertex <y> <x1> <x2> ...
//	sector <floor> <ceil> <vertex...> <neighbor...>
//	player <x> <y> <angle> <sector>
//
// Vertex indices count every vertex in file order. A neighbor of -1 marks a
// wall. The resulting world is validated before it is returned.
func loadWorld(r io.Reader) (*World, error) {
	var (
		points  []vec2
		sectors []Sector
		player  Player
		lineNo  int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.ReplaceAll(sc.Text(), "\t", " ")
		fields := strings.Fields(line)
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		var err error
		switch fields[0] {
		case "vertex":
			points, err = parseVertexLine(points, fields[1:])
		case "sector":
			var s Sector
			s, err = parseSectorLine(points, fields[1:])
			sectors = append(sectors, s)
		case "player":
			player, err = parsePlayerLine(fields[1:])
		default:
			err = fmt.Errorf("%q: %w", fields[0], ErrUnknownLine)
		}
		if err != nil {
			return nil, &loadError{line: lineNo, err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading map: %w", err)
	}
	return newWorld(sectors, player)
}

// loadWorldFile loads path, or the embedded default map when path is empty.
func loadWorldFile(path string) (*World, error) {
	if path == "" {
		return loadWorld(strings.NewReader(defaultMap))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening map: %w", err)
	}
	defer f.Close()
	w, err := loadWorld(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return w, nil
}

func parseVertexLine(points []vec2, args []string) ([]vec2, error) {
	if len(args) < 2 {
		return points, fmt.Errorf("vertex needs a y and at least one x: %w", ErrMalformedLine)
	}
	nums, err := parseFloats(args)
	if err != nil {
		return points, err
	}
	y := nums[0]
	for _, x := range nums[1:] {
		points = append(points, vec2{x, y})
	}
	return points, nil
}

func parseSectorLine(points []vec2, args []string) (Sector, error) {
	if len(args) < 2 || len(args)%2 != 0 {
		return Sector{}, fmt.Errorf("sector has %d values, want floor, ceil and vertex/neighbor pairs: %w",
			len(args), ErrMalformedLine)
	}
	heights, err := parseFloats(args[:2])
	if err != nil {
		return Sector{}, err
	}
	s := Sector{floor: heights[0], ceil: heights[1]}
	half := (len(args) - 2) / 2
	for i := 0; i < half; i++ {
		vi, err := strconv.Atoi(args[2+i])
		if err != nil {
			return Sector{}, fmt.Errorf("vertex index %q: %w", args[2+i], ErrMalformedLine)
		}
		ni, err := strconv.Atoi(args[2+half+i])
		if err != nil {
			return Sector{}, fmt.Errorf("neighbor %q: %w", args[2+half+i], ErrMalformedLine)
		}
		if vi < 0 || vi >= len(points) {
			return Sector{}, fmt.Errorf("vertex %d of %d: %w", vi, len(points), ErrVertexIndex)
		}
		s.vertices = append(s.vertices, points[vi])
		if ni < 0 {
			s.neighbors = append(s.neighbors, wall())
		} else {
			s.neighbors = append(s.neighbors, portalTo(ni))
		}
	}
	return s, nil
}

func parsePlayerLine(args []string) (Player, error) {
	if len(args) != 4 {
		return Player{}, fmt.Errorf("player has %d values, want 4: %w", len(args), ErrMalformedLine)
	}
	nums, err := parseFloats(args[:3])
	if err != nil {
		return Player{}, err
	}
	sector, err := strconv.Atoi(args[3])
	if err != nil {
		return Player{}, fmt.Errorf("player sector %q: %w", args[3], ErrMalformedLine)
	}
	p := Player{pos: vec3{x: nums[0], y: nums[1]}, sector: sector}
	p.setAngle(nums[2])
	return p, nil
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("number %q: %w", a, ErrMalformedLine)
		}
		out[i] = v
	}
	return out, nil
}
