package main

import (
	"github.com/Papperslappen/aoc2023/days/day01"
	"github.com/Papperslappen/aoc2023/days/day02"
	"github.com/Papperslappen/aoc2023/days/day03"
	"github.com/Papperslappen/aoc2023/days/day04"
	"github.com/Papperslappen/aoc2023/days/day05"
	"github.com/Papperslappen/aoc2023/days/day06"
	"github.com/Papperslappen/aoc2023/days/day07"
	"github.com/Papperslappen/aoc2023/days/day08"
	"github.com/Papperslappen/aoc2023/days/day09"
	"github.com/Papperslappen/aoc2023/days/day10"
	"github.com/Papperslappen/aoc2023/days/day11"
	"github.com/Papperslappen/aoc2023/days/day12"
	"github.com/Papperslappen/aoc2023/days/day13"
	"github.com/Papperslappen/aoc2023/days/day14"
	"github.com/Papperslappen/aoc2023/days/day15"
	"github.com/Papperslappen/aoc2023/days/day16"
	"github.com/Papperslappen/aoc2023/days/day17"
	"github.com/Papperslappen/aoc2023/days/day18"
	"github.com/Papperslappen/aoc2023/days/day19"
	"github.com/Papperslappen/aoc2023/puzzle"
)

func registry() (*puzzle.Registry, error) {
	return puzzle.NewRegistry(
		day01.Puzzle,
		day02.Puzzle,
		day03.Puzzle,
		day04.Puzzle,
		day05.Puzzle,
		day06.Puzzle,
		day07.Puzzle,
		day08.Puzzle,
		day09.Puzzle,
		day10.Puzzle,
		day11.Puzzle,
		day12.Puzzle,
		day13.Puzzle,
		day14.Puzzle,
		day15.Puzzle,
		day16.Puzzle,
		day17.Puzzle,
		day18.Puzzle,
		day19.Puzzle,
	)
}
