package lua

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/dshills/richcursor/internal/dom"
	"github.com/dshills/richcursor/internal/plugin"
	lua "github.com/yuin/gopher-lua"
	"golang.org/x/net/html"
)

// Plugin is a card or atom whose hooks are Lua functions.
type Plugin struct {
	state  *State
	name   string
	kind   plugin.Kind
	render *lua.LFunction
	edit   *lua.LFunction
}

// EditablePlugin is a scripted card that defines an edit hook.
type EditablePlugin struct {
	*Plugin
}

// Load evaluates source and builds the plugin it defines.
// The returned value implements plugin.Editable when the script defines an
// edit hook for a card.
func Load(source string, opts ...StateOption) (plugin.Plugin, error) {
	state := NewState(opts...)
	if err := state.DoString(source); err != nil {
		state.Close()
		return nil, fmt.Errorf("%w: %v", plugin.ErrInvalidPlugin, err)
	}
	return fromState(state)
}

// LoadFile evaluates the script at path and builds the plugin it defines.
func LoadFile(path string, opts ...StateOption) (plugin.Plugin, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plugin %s: %w", path, err)
	}
	p, err := Load(string(src), opts...)
	if err != nil {
		return nil, fmt.Errorf("loading plugin %s: %w", path, err)
	}
	return p, nil
}

func fromState(state *State) (plugin.Plugin, error) {
	fail := func(format string, args ...any) (plugin.Plugin, error) {
		state.Close()
		return nil, fmt.Errorf("%w: "+format, append([]any{plugin.ErrInvalidPlugin}, args...)...)
	}

	table, ok := state.GetGlobal("plugin").(*lua.LTable)
	if !ok {
		state.Close()
		return nil, fmt.Errorf("%w: %w", plugin.ErrInvalidPlugin, ErrNoPluginTable)
	}

	name, ok := table.RawGetString("name").(lua.LString)
	if !ok || name == "" {
		return fail("plugin.name must be a non-empty string")
	}
	kindName, ok := table.RawGetString("kind").(lua.LString)
	if !ok {
		return fail("plugin.kind must be \"card\" or \"atom\"")
	}
	kind, err := plugin.ParseKind(string(kindName))
	if err != nil {
		state.Close()
		return nil, err
	}
	render, ok := table.RawGetString("render").(*lua.LFunction)
	if !ok {
		return fail("%s: plugin.render must be a function", name)
	}

	p := &Plugin{state: state, name: string(name), kind: kind, render: render}
	if edit, ok := table.RawGetString("edit").(*lua.LFunction); ok {
		if kind != plugin.KindCard {
			return fail("%s: only cards may define an edit hook", name)
		}
		p.edit = edit
		return &EditablePlugin{Plugin: p}, nil
	}
	return p, nil
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return p.name
}

// Kind returns the plugin kind.
func (p *Plugin) Kind() plugin.Kind {
	return p.kind
}

// Render runs the render hook.
func (p *Plugin) Render(env plugin.Env) (*html.Node, error) {
	return p.call(p.render, env)
}

// Close releases the plugin's Lua state.
func (p *Plugin) Close() error {
	return p.state.Close()
}

// Edit runs the edit hook.
func (p *EditablePlugin) Edit(env plugin.Env) (*html.Node, error) {
	return p.call(p.edit, env)
}

func (p *Plugin) call(fn *lua.LFunction, env plugin.Env) (*html.Node, error) {
	arg := p.state.L.NewTable()
	arg.RawSetString("name", lua.LString(env.Name))
	arg.RawSetString("value", lua.LString(env.Value))
	arg.RawSetString("mode", lua.LString(env.Mode.String()))
	arg.RawSetString("payload", ToLuaValue(p.state.L, env.Payload))

	ret, err := p.state.CallFunction(fn, arg)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", p.kind, p.name, err)
	}
	node, err := toNode(ret, 0)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", p.kind, p.name, err)
	}
	return node, nil
}

const maxNodeDepth = 32

// toNode converts a hook result into a node tree.
func toNode(v lua.LValue, depth int) (*html.Node, error) {
	if depth > maxNodeDepth {
		return nil, fmt.Errorf("%w: nesting deeper than %d", ErrBadRenderResult, maxNodeDepth)
	}
	switch val := v.(type) {
	case *lua.LNilType:
		return nil, nil
	case lua.LString:
		return dom.Text(string(val)), nil
	case lua.LNumber:
		return dom.Text(val.String()), nil
	case *lua.LTable:
		return tableToNode(val, depth)
	default:
		return nil, fmt.Errorf("%w: unexpected %s", ErrBadRenderResult, v.Type())
	}
}

func tableToNode(t *lua.LTable, depth int) (*html.Node, error) {
	tag, ok := t.RawGetString("tag").(lua.LString)
	if !ok || tag == "" {
		return nil, fmt.Errorf("%w: table without tag", ErrBadRenderResult)
	}
	el := dom.Element(string(tag))

	if class, ok := t.RawGetString("class").(lua.LString); ok {
		el.Attr = append(el.Attr, dom.Attr("class", string(class)))
	}
	if attrs, ok := t.RawGetString("attrs").(*lua.LTable); ok {
		m, _ := tableToGo(attrs, map[*lua.LTable]bool{}).(map[string]any)
		for _, key := range slices.Sorted(maps.Keys(m)) {
			el.Attr = append(el.Attr, dom.Attr(key, fmt.Sprint(m[key])))
		}
	}
	if text, ok := t.RawGetString("text").(lua.LString); ok {
		dom.Append(el, dom.Text(string(text)))
	}
	if children, ok := t.RawGetString("children").(*lua.LTable); ok {
		for i := 1; i <= children.Len(); i++ {
			child, err := toNode(children.RawGetInt(i), depth+1)
			if err != nil {
				return nil, err
			}
			dom.Append(el, child)
		}
	}
	return el, nil
}
