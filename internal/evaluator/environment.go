package evaluator

import (
	"sync"

	"github.com/sagarreddypatil/language/internal/ast"
)

// Cell is the "box with a hole" of spec §4.2/§9: an initially-empty,
// later-filled slot. Recursive bindings work by reserving a Cell before
// the value that will fill it exists, constructing that value with a
// reference to the environment holding the Cell, then filling it.
type Cell struct {
	Value  Value
	Filled bool
}

// Environment is a mapping from Name to Cell, chained to an outer scope.
// Grounded on the teacher's internal/evaluator/environment.go (an
// outer-chained map guarded by sync.RWMutex); extending an Environment
// here always means constructing a new enclosed frame rather than
// mutating the parent, so "bind returns a new environment sharing the
// cells of the old one" (spec §4.2) holds by construction — the old
// frame's cells are reachable unchanged through the outer pointer.
type Environment struct {
	mu    sync.RWMutex
	store map[ast.Name]*Cell
	outer *Environment
}

func NewEnvironment() *Environment {
	return &Environment{store: make(map[ast.Name]*Cell)}
}

func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.outer = outer
	return env
}

// Reserve returns a new environment enclosing the receiver, with an empty
// cell for each given name.
func (e *Environment) Reserve(names []ast.Name) *Environment {
	env := NewEnclosedEnvironment(e)
	for _, n := range names {
		env.store[n] = &Cell{}
	}
	return env
}

// Fill populates a cell reserved in this exact frame (not an outer one).
func (e *Environment) Fill(name ast.Name, v Value) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if c, ok := e.store[name]; ok {
		c.Value = v
		c.Filled = true
	}
}

// Bind is a convenience for Reserve+Fill of a single already-known value.
func (e *Environment) Bind(name ast.Name, v Value) *Environment {
	env := e.Reserve([]ast.Name{name})
	env.Fill(name, v)
	return env
}

// Get dereferences a name, walking the outer chain. Dereferencing an
// empty cell is the fatal "uninitialised late binding" error of spec §7;
// a name absent from every frame is "unbound name" (should be unreachable
// past C2 in a type-checked program).
func (e *Environment) Get(name ast.Name) (Value, error) {
	e.mu.RLock()
	c, ok := e.store[name]
	e.mu.RUnlock()
	if ok {
		if !c.Filled {
			return nil, &RuntimeError{Msg: "uninitialised late binding: " + string(name)}
		}
		return c.Value, nil
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return nil, &RuntimeError{Msg: "unbound name: " + string(name)}
}
