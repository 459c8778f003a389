// Package intcode runs the two-opcode arithmetic machine: opcode 1 adds,
// opcode 2 multiplies, 99 halts. Operands are positional.
//
// Errors:
//
//   - ErrBadCode: the source is not a comma-separated integer list.
//   - ErrUnknownOpcode: execution reached a value outside {1, 2, 99}.
//   - ErrOutOfRange: an operand or store position lies outside memory.
//   - ErrNoSolution: no noun/verb pair produces the search target.
package intcode

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Sentinel errors for parsing and execution.
var (
	// ErrBadCode indicates source text that is not a comma-separated integer list.
	ErrBadCode = errors.New("intcode: malformed code")
	// ErrUnknownOpcode indicates execution reached a non-opcode value.
	ErrUnknownOpcode = errors.New("intcode: unknown opcode")
	// ErrOutOfRange indicates an operand position outside program memory.
	ErrOutOfRange = errors.New("intcode: position out of range")
	// ErrNoSolution indicates the noun/verb search space is exhausted.
	ErrNoSolution = errors.New("intcode: no noun/verb combination found")
)

// Program is one intcode memory image. Run mutates it in place; use
// Clone to keep a pristine copy across runs.
type Program struct {
	code []int64
}

// Parse reads comma-separated integers, tolerating surrounding spaces,
// into a fresh Program.
func Parse(src string) (*Program, error) {
	parts := strings.Split(src, ",")
	code := make([]int64, 0, len(parts))
	for _, tok := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(tok), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("token %q: %w", tok, ErrBadCode)
		}
		code = append(code, v)
	}
	return &Program{code: code}, nil
}

// Clone returns an independent copy of the program's memory.
func (p *Program) Clone() *Program {
	return &Program{code: slices.Clone(p.code)}
}

// Len returns the memory size.
func (p *Program) Len() int {
	return len(p.code)
}

// Get reads the value at pos.
func (p *Program) Get(pos int) (int64, error) {
	if pos < 0 || pos >= len(p.code) {
		return 0, fmt.Errorf("position %d: %w", pos, ErrOutOfRange)
	}
	return p.code[pos], nil
}

// Set writes v at pos; used to patch noun and verb before a run.
func (p *Program) Set(pos int, v int64) error {
	if pos < 0 || pos >= len(p.code) {
		return fmt.Errorf("position %d: %w", pos, ErrOutOfRange)
	}
	p.code[pos] = v
	return nil
}

// Run executes the program from position 0 until a halt opcode and
// returns the value left at position 0. Memory is mutated in place.
func (p *Program) Run() (int64, error) {
	for pc := 0; ; pc += 4 {
		if pc >= len(p.code) {
			return 0, fmt.Errorf("program counter %d: %w", pc, ErrOutOfRange)
		}
		op := p.code[pc]
		if op == 99 {
			return p.code[0], nil
		}
		if op != 1 && op != 2 {
			return 0, fmt.Errorf("value %d at position %d: %w", op, pc, ErrUnknownOpcode)
		}
		if pc+3 >= len(p.code) {
			return 0, fmt.Errorf("operands of opcode at %d: %w", pc, ErrOutOfRange)
		}
		a, b, dst := p.code[pc+1], p.code[pc+2], p.code[pc+3]
		av, err := p.Get(int(a))
		if err != nil {
			return 0, err
		}
		bv, err := p.Get(int(b))
		if err != nil {
			return 0, err
		}
		if op == 1 {
			err = p.Set(int(dst), av+bv)
		} else {
			err = p.Set(int(dst), av*bv)
		}
		if err != nil {
			return 0, err
		}
	}
}

// RunWith patches noun and verb into positions 1 and 2 of a fresh copy
// and runs it, leaving the receiver untouched.
func (p *Program) RunWith(noun, verb int64) (int64, error) {
	c := p.Clone()
	if err := c.Set(1, noun); err != nil {
		return 0, err
	}
	if err := c.Set(2, verb); err != nil {
		return 0, err
	}
	return c.Run()
}

// Search scans noun and verb over 0..99 for the pair whose run leaves
// target at position 0. Returns ErrNoSolution when the space is
// exhausted; run failures for individual pairs are skipped.
func Search(p *Program, target int64) (noun, verb int64, err error) {
	for n := int64(0); n < 100; n++ {
		for v := int64(0); v < 100; v++ {
			got, err := p.RunWith(n, v)
			if err != nil {
				continue
			}
			if got == target {
				return n, v, nil
			}
		}
	}
	return 0, 0, fmt.Errorf("target %d: %w", target, ErrNoSolution)
}
