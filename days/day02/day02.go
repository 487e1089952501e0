// Package day02 solves "Cube Conundrum": check games of coloured cube draws
// against a bag's contents.
package day02

import (
	"fmt"
	"strings"

	"github.com/Papperslappen/aoc2023/input"
	"github.com/Papperslappen/aoc2023/puzzle"
)

// Puzzle registers both parts.
var Puzzle = puzzle.Solver{Day: 2, Title: "Cube Conundrum", PartA: PartA, PartB: PartB}

// Cubes counts cubes per colour.
type Cubes struct {
	Red, Green, Blue int
}

// Bag is the bag of part A.
var Bag = Cubes{Red: 12, Green: 13, Blue: 14}

// Within reports whether every count of c fits in limit.
func (c Cubes) Within(limit Cubes) bool {
	return c.Red <= limit.Red && c.Green <= limit.Green && c.Blue <= limit.Blue
}

// Power multiplies the three counts.
func (c Cubes) Power() int { return c.Red * c.Green * c.Blue }

// Game is one row: its id and the draws shown.
type Game struct {
	ID    int
	Draws []Cubes
}

// Minimum returns the fewest cubes of each colour that make the game possible.
func (g Game) Minimum() Cubes {
	var m Cubes
	for _, d := range g.Draws {
		m.Red = max(m.Red, d.Red)
		m.Green = max(m.Green, d.Green)
		m.Blue = max(m.Blue, d.Blue)
	}
	return m
}

// ParseGame reads "Game 1: 3 blue, 4 red; 1 red, 2 green".
func ParseGame(row string) (Game, error) {
	head, body, ok := strings.Cut(row, ":")
	if !ok {
		return Game{}, fmt.Errorf("%w: game %q has no ':'", input.ErrMalformed, row)
	}
	ids, err := input.Labelled[int](head, "Game")
	if err != nil {
		return Game{}, err
	}
	if len(ids) != 1 {
		return Game{}, fmt.Errorf("%w: game header %q", input.ErrMalformed, head)
	}

	g := Game{ID: ids[0]}
	for _, draw := range strings.Split(body, ";") {
		var c Cubes
		for _, part := range strings.Split(draw, ",") {
			fields := strings.Fields(part)
			if len(fields) != 2 {
				return Game{}, fmt.Errorf("%w: draw %q", input.ErrMalformed, part)
			}
			n, err := input.PosInt(fields[0])
			if err != nil {
				return Game{}, err
			}
			switch fields[1] {
			case "red":
				c.Red += int(n)
			case "green":
				c.Green += int(n)
			case "blue":
				c.Blue += int(n)
			default:
				return Game{}, fmt.Errorf("%w: colour %q", input.ErrMalformed, fields[1])
			}
		}
		g.Draws = append(g.Draws, c)
	}
	return g, nil
}

func games(rows []string, score func(Game) int) (int64, error) {
	var total int64
	for _, row := range rows {
		g, err := ParseGame(row)
		if err != nil {
			return 0, err
		}
		total += int64(score(g))
	}
	return total, nil
}

// PartA sums the ids of games possible with Bag.
func PartA(rows []string) (int64, error) {
	return games(rows, func(g Game) int {
		if g.Minimum().Within(Bag) {
			return g.ID
		}
		return 0
	})
}

// PartB sums the power of each game's minimum set.
func PartB(rows []string) (int64, error) {
	return games(rows, func(g Game) int { return g.Minimum().Power() })
}
