package scripting

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/lumen3d/engine/internal/component"
	"github.com/lumen3d/engine/internal/core/ecs"
	"github.com/lumen3d/engine/internal/core/event"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM bound to a world. An LState is
// not goroutine-safe, so every entry point — tick hooks, DoString and
// event handlers registered from Lua — serializes through mu.
type Engine struct {
	mu     sync.Mutex
	vm     *lua.LState
	world  *ecs.World
	log    *zap.Logger
	onTick *lua.LFunction
}

// NewEngine creates a Lua engine, installs the world API and loads all
// scripts from scriptsDir. An empty or missing directory is fine.
func NewEngine(world *ecs.World, scriptsDir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, world: world, log: log}
	e.registerAPI()

	if scriptsDir != "" {
		if err := e.loadDir(scriptsDir); err != nil {
			vm.Close()
			return nil, fmt.Errorf("load scripts: %w", err)
		}
	}
	return e, nil
}

// Close shuts the VM down. No calls may follow.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.vm.Close()
}

// DoString runs a chunk of Lua source, serialized with all other VM use.
func (e *Engine) DoString(src string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.vm.DoString(src)
}

// OnTick invokes the script-registered tick hook, if any.
func (e *Engine) OnTick(dt time.Duration) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.onTick == nil {
		return nil
	}
	if err := e.vm.CallByParam(lua.P{
		Fn:      e.onTick,
		NRet:    0,
		Protect: true,
	}, lua.LNumber(dt.Seconds())); err != nil {
		return fmt.Errorf("on_tick: %w", err)
	}
	return nil
}

// loadDir loads all .lua files in a directory. Missing dirs are skipped.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// registerAPI exposes the world to scripts. The functions run inside VM
// calls that already hold mu, so they only touch the world's own locks.
func (e *Engine) registerAPI() {
	e.vm.SetGlobal("world_create", e.vm.NewFunction(e.luaWorldCreate))
	e.vm.SetGlobal("world_remove", e.vm.NewFunction(e.luaWorldRemove))
	e.vm.SetGlobal("entity_count", e.vm.NewFunction(e.luaEntityCount))
	e.vm.SetGlobal("add_tag", e.vm.NewFunction(e.luaAddTag))
	e.vm.SetGlobal("tag_value", e.vm.NewFunction(e.luaTagValue))
	e.vm.SetGlobal("on_event", e.vm.NewFunction(e.luaOnEvent))
	e.vm.SetGlobal("on_tick", e.vm.NewFunction(e.luaOnTick))
}

// findEntity returns the first live entity with the given id, or nil.
func (e *Engine) findEntity(id string) *ecs.Entity {
	for _, ent := range e.world.Entities() {
		if ent.ID() == id {
			return ent
		}
	}
	return nil
}

func (e *Engine) findOrCreate(id string) *ecs.Entity {
	if ent := e.findEntity(id); ent != nil {
		return ent
	}
	return e.world.CreateDefault(id)
}

// world_create(id) — create an empty tracked entity.
func (e *Engine) luaWorldCreate(L *lua.LState) int {
	id := L.CheckString(1)
	e.world.CreateDefault(id)
	return 0
}

// world_remove(id) — remove every entity with the id.
func (e *Engine) luaWorldRemove(L *lua.LState) int {
	e.world.RemoveByID(L.CheckString(1))
	return 0
}

// entity_count() -> number of live entities.
func (e *Engine) luaEntityCount(L *lua.LState) int {
	L.Push(lua.LNumber(e.world.Len()))
	return 1
}

// add_tag(id, key, value) — attach a tag component, creating the entity
// if it does not exist yet.
func (e *Engine) luaAddTag(L *lua.LState) int {
	id := L.CheckString(1)
	key := L.CheckString(2)
	value := L.CheckString(3)
	ent := e.findOrCreate(id)
	ent.AddComponent(component.CategoryTag, component.Tag{Key: key, Value: value})
	return 0
}

// tag_value(id, key) -> value of the first matching tag, or nil.
func (e *Engine) luaTagValue(L *lua.LState) int {
	id := L.CheckString(1)
	key := L.CheckString(2)
	ent := e.findEntity(id)
	if ent == nil {
		L.Push(lua.LNil)
		return 1
	}
	for _, tag := range ecs.ComponentsOf[component.Tag](ent, component.CategoryTag) {
		if tag.Key == key {
			L.Push(lua.LString(tag.Value))
			return 1
		}
	}
	L.Push(lua.LNil)
	return 1
}

// on_event(id, fn) — attach a Lua function as an event handler
// component on the named entity.
func (e *Engine) luaOnEvent(L *lua.LState) int {
	id := L.CheckString(1)
	fn := L.CheckFunction(2)
	ent := e.findOrCreate(id)

	h := &luaHandler{engine: e, fn: fn}
	eh := component.NewEventHandler(ecs.ID("lua handler"), h)
	eh.Attach(ent)
	ent.AddComponent(component.CategoryEventHandler, eh)
	return 0
}

// on_tick(fn) — register the per-tick hook.
func (e *Engine) luaOnTick(L *lua.LState) int {
	e.onTick = L.CheckFunction(1)
	return 0
}

// luaHandler adapts a Lua function to the Handler capability. It binds
// back to its wrapping component so scripts can reach their entity.
type luaHandler struct {
	engine *Engine
	fn     *lua.LFunction
	comp   *component.EventHandler
}

func (h *luaHandler) SetEventHandler(eh *component.EventHandler) {
	h.comp = eh
}

func (h *luaHandler) Handle(ev event.Event) {
	h.engine.mu.Lock()
	defer h.engine.mu.Unlock()

	vm := h.engine.vm
	if err := vm.CallByParam(lua.P{
		Fn:      h.fn,
		NRet:    0,
		Protect: true,
	}, eventToTable(vm, ev)); err != nil {
		h.engine.log.Error("lua event handler failed", zap.Error(err))
	}
}

// eventToTable flattens an event into a Lua table with a "type" field.
func eventToTable(vm *lua.LState, ev event.Event) *lua.LTable {
	t := vm.NewTable()
	switch ev := ev.(type) {
	case event.CloseRequested:
		t.RawSetString("type", lua.LString("close_requested"))
	case event.Resized:
		t.RawSetString("type", lua.LString("resized"))
		t.RawSetString("width", lua.LNumber(ev.Width))
		t.RawSetString("height", lua.LNumber(ev.Height))
	case event.RedrawRequested:
		t.RawSetString("type", lua.LString("redraw_requested"))
	case event.Tick:
		t.RawSetString("type", lua.LString("tick"))
		t.RawSetString("delta", lua.LNumber(ev.Delta.Seconds()))
	case event.KeyInput:
		t.RawSetString("type", lua.LString("key_input"))
		t.RawSetString("key", lua.LNumber(ev.Key))
		t.RawSetString("action", lua.LNumber(ev.Action))
		t.RawSetString("mods", lua.LNumber(ev.Mods))
	case event.CursorMoved:
		t.RawSetString("type", lua.LString("cursor_moved"))
		t.RawSetString("x", lua.LNumber(ev.X))
		t.RawSetString("y", lua.LNumber(ev.Y))
	case event.MouseButton:
		t.RawSetString("type", lua.LString("mouse_button"))
		t.RawSetString("button", lua.LNumber(ev.Button))
		t.RawSetString("action", lua.LNumber(ev.Action))
	default:
		t.RawSetString("type", lua.LString("unknown"))
	}
	return t
}
