// Package script embeds a sandboxed Lua runtime that user scripts can
// use to react to the application's clicks.
//
// Scripts see one module, slowflow, preloaded into the state:
//
//	local sf = require("slowflow")
//	sf.log("hello")                  -- write to the app log
//	sf.on_click(function(ev) end)    -- ev.label, ev.name, ev.x, ev.y
//	for _, p in ipairs(sf.people()) do ... end
//
// The io, os and debug libraries are not opened, and package's search
// paths are cleared, so scripts cannot reach the file system or the
// process.
package script
