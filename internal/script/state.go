package script

import (
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"
)

// Person is one row of the demo form as scripts see it.
type Person struct {
	Name string
	Age  string
}

// Options configures a State. Log receives slowflow.log output; a nil
// Log discards it. People backs the slowflow.people() table.
type Options struct {
	Log    func(msg string)
	People []Person
}

// State wraps a sandboxed gopher-lua state with the slowflow module
// preloaded.
//
// gopher-lua's LState is not goroutine-safe; the mutex serializes all
// Go-side access, but scripts still execute single-threaded.
type State struct {
	mu      sync.Mutex
	L       *lua.LState
	opts    Options
	onClick []*lua.LFunction
	closed  bool
}

// New creates a sandboxed state and preloads the slowflow module. The
// caller must Close it.
func New(opts Options) *State {
	s := &State{opts: opts}

	L := lua.NewState(lua.Options{
		SkipOpenLibs: true,
	})
	s.L = L

	openSafeLibraries(L)
	L.PreloadModule("slowflow", s.moduleLoader)
	return s
}

// openSafeLibraries opens only the side-effect-free standard
// libraries plus package, which require needs. io, os and debug stay
// closed, and package's search paths are cleared so require can only
// reach preloaded modules, never the disk.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenPackage(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	if pkg, ok := L.GetGlobal("package").(*lua.LTable); ok {
		L.SetField(pkg, "path", lua.LString(""))
		L.SetField(pkg, "cpath", lua.LString(""))
	}
}

// moduleLoader builds the slowflow module table on require.
func (s *State) moduleLoader(L *lua.LState) int {
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"log":      s.luaLog,
		"on_click": s.luaOnClick,
		"people":   s.luaPeople,
	})
	L.Push(mod)
	return 1
}

func (s *State) luaLog(L *lua.LState) int {
	msg := L.CheckString(1)
	if s.opts.Log != nil {
		s.opts.Log(msg)
	}
	return 0
}

func (s *State) luaOnClick(L *lua.LState) int {
	fn := L.CheckFunction(1)
	s.onClick = append(s.onClick, fn)
	return 0
}

func (s *State) luaPeople(L *lua.LState) int {
	t := L.NewTable()
	for i, p := range s.opts.People {
		row := L.NewTable()
		row.RawSetString("name", lua.LString(p.Name))
		row.RawSetString("age", lua.LString(p.Age))
		t.RawSetInt(i+1, row)
	}
	L.Push(t)
	return 1
}

// DoFile executes a Lua file synchronously.
func (s *State) DoFile(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStateClosed
	}
	return s.doWithRecovery(func() error {
		return s.L.DoFile(path)
	})
}

// DoString executes Lua source synchronously.
func (s *State) DoString(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStateClosed
	}
	return s.doWithRecovery(func() error {
		return s.L.DoString(code)
	})
}

// doWithRecovery converts Lua runtime panics into errors.
func (s *State) doWithRecovery(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}

// HandlerCount reports how many on_click handlers scripts have
// registered.
func (s *State) HandlerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.onClick)
}

// EmitClick calls every registered on_click handler with an event
// table carrying the click's derived label, the widget name and the
// press position. The first failing handler stops the emission and
// its error is returned.
func (s *State) EmitClick(label, name string, x, y int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStateClosed
	}

	for _, fn := range s.onClick {
		ev := s.L.NewTable()
		ev.RawSetString("label", lua.LString(label))
		ev.RawSetString("name", lua.LString(name))
		ev.RawSetString("x", lua.LNumber(x))
		ev.RawSetString("y", lua.LNumber(y))

		err := s.doWithRecovery(func() error {
			return s.L.CallByParam(lua.P{
				Fn:      fn,
				NRet:    0,
				Protect: true,
			}, ev)
		})
		if err != nil {
			return fmt.Errorf("click handler: %w", err)
		}
	}
	return nil
}

// Close releases the Lua state. Closing twice is a no-op.
func (s *State) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.onClick = nil
	s.L.Close()
}
