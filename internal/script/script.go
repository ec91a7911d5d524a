package script

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/AnatoleLucet/list"
)

var (
	ErrUnknownOp = errors.New("unknown op")
	ErrNilList   = errors.New("nil list")
)

const (
	OpAdd    = "add"
	OpSet    = "set"
	OpGet    = "get"
	OpRemove = "remove"
	OpSize   = "size"
)

type Op struct {
	Op    string `yaml:"op"`
	Index int    `yaml:"index,omitempty"`
	Value int    `yaml:"value,omitempty"`
}

func (o Op) String() string {
	switch o.Op {
	case OpAdd, OpSet:
		return fmt.Sprintf("%s(%d, %d)", o.Op, o.Index, o.Value)
	case OpGet, OpRemove:
		return fmt.Sprintf("%s(%d)", o.Op, o.Index)
	default:
		return o.Op + "()"
	}
}

// Script is a sequence of list operations, usually loaded from YAML:
//
//	ops:
//	  - {op: add, index: 0, value: 3}
//	  - {op: get, index: 0}
type Script struct {
	Ops []Op `yaml:"ops"`
}

// Result is the outcome of a single op.
type Result struct {
	Op Op

	// the value returned by get, set and remove
	Value    int
	HasValue bool

	// the list size after the op
	Size int

	Err error
}

func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}

	for i, op := range s.Ops {
		switch op.Op {
		case OpAdd, OpSet, OpGet, OpRemove, OpSize:
		default:
			return nil, fmt.Errorf("%w %q at step %d", ErrUnknownOp, op.Op, i)
		}
	}

	return &s, nil
}

// Run applies every op to l in order.
// Failing ops don't stop the run, their error is kept in the matching Result.
func (s *Script) Run(l list.List[int]) ([]Result, error) {
	if l == nil {
		return nil, ErrNilList
	}

	results := make([]Result, 0, len(s.Ops))
	for _, op := range s.Ops {
		res := Result{Op: op}

		switch op.Op {
		case OpAdd:
			_, res.Err = l.Add(op.Index, op.Value)
		case OpSet:
			res.Value, res.Err = l.Set(op.Index, op.Value)
			res.HasValue = res.Err == nil
		case OpGet:
			res.Value, res.Err = l.Get(op.Index)
			res.HasValue = res.Err == nil
		case OpRemove:
			res.Value, res.Err = l.Remove(op.Index)
			res.HasValue = res.Err == nil
		case OpSize:
		default:
			res.Err = fmt.Errorf("%w %q", ErrUnknownOp, op.Op)
		}

		res.Size = l.Size()
		results = append(results, res)
	}

	return results, nil
}
