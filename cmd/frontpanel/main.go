// Command frontpanel runs the puzzle solvers: fuel sums (day 1), the
// intcode machine (day 2), wire-crossing queries (day 3) and password
// range validation (day 4).
package main

import (
	"flag"
	"fmt"
	"os"

	"frontpanel/fuel"
	"frontpanel/ingest"
	"frontpanel/intcode"
	"frontpanel/passwd"
	"frontpanel/render"
	"frontpanel/wire"
)

func main() {
	var (
		day   = flag.Int("day", 3, "Puzzle day to run: 1-4")
		input = flag.String("input", "", "Input file (days 1-3)")
		grid  = flag.Bool("grid", false, "Print the diagnostic panel grid (day 3)")
		view  = flag.Bool("view", false, "Open the interactive panel viewer (day 3)")
		start = flag.Int64("start", 0, "Range start (day 4)")
		end   = flag.Int64("end", 0, "Range end, inclusive (day 4)")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -day N [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -day 3 -input wires.txt\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -day 3 -input wires.txt -grid\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -day 4 -start 245318 -end 765747\n", os.Args[0])
	}
	flag.Parse()

	var err error
	switch *day {
	case 1:
		err = runFuel(*input)
	case 2:
		err = runIntcode(*input)
	case 3:
		err = runPanel(*input, *grid, *view)
	case 4:
		err = runPasswd(*start, *end)
	default:
		err = fmt.Errorf("unknown day %d (want 1-4)", *day)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runFuel(input string) error {
	lines, err := ingest.Lines(input)
	if err != nil {
		return err
	}
	part1, err := fuel.SumRequired(lines)
	if err != nil {
		return err
	}
	part2, err := fuel.SumTotal(lines)
	if err != nil {
		return err
	}
	fmt.Println("Part1:", part1)
	fmt.Println("Part2:", part2)
	return nil
}

func runIntcode(input string) error {
	lines, err := ingest.Lines(input)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return fmt.Errorf("%s: no input lines", input)
	}
	prog, err := intcode.Parse(lines[0])
	if err != nil {
		return err
	}
	part1, err := prog.RunWith(12, 2)
	if err != nil {
		return err
	}
	fmt.Println("Part1:", part1)

	noun, verb, err := intcode.Search(prog, 19690720)
	if err != nil {
		return err
	}
	fmt.Println("Part2:", 100*noun+verb)
	return nil
}

func runPanel(input string, grid, view bool) error {
	first, second, err := ingest.Pair(input)
	if err != nil {
		return err
	}
	p, err := wire.ParsePanel(first, second)
	if err != nil {
		return err
	}

	if view {
		return render.View(p, render.DefaultOptions())
	}
	if grid {
		out, err := render.Grid(p, render.DefaultOptions())
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	}

	dist, err := p.NearestCrossover()
	if err != nil {
		return err
	}
	fmt.Println("Part1:", dist)

	steps, err := p.FewestSteps()
	if err != nil {
		return err
	}
	fmt.Println("Part2:", steps)
	return nil
}

func runPasswd(start, end int64) error {
	if start > end {
		return fmt.Errorf("empty range %d..%d", start, end)
	}
	fmt.Println("Part1:", passwd.Count(start, end, passwd.Valid))
	fmt.Println("Part2:", passwd.Count(start, end, passwd.ValidStrict))
	return nil
}
