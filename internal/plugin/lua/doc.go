// Package lua builds card and atom plugins from Lua scripts.
//
// This package wraps the gopher-lua library to provide:
//   - Sandboxed Lua state management (base, table, string and math only)
//   - Go-Lua value conversion for hook environments
//   - Conversion of hook results into rendered nodes
//   - Per-call execution timeouts
//
// # Script format
//
// A script defines a global table named plugin:
//
//	plugin = {
//	    name = "mention",
//	    kind = "atom",
//	    render = function(env)
//	        return { tag = "span", class = "mention", text = "@" .. env.value }
//	    end,
//	}
//
// A hook may return a string (rendered as a text node), a table describing an
// element ({tag=, class=, text=, attrs={...}, children={...}}), or nil to
// render nothing. Cards may also define an edit hook.
//
// # State
//
//	p, err := lua.LoadFile("cards/image.lua")
//	if err != nil {
//	    return err
//	}
//	registry.Register(p)
//
// Each loaded plugin owns its State; call Close on the returned plugin when
// it is no longer needed.
package lua
