package lua

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/reglet-dev/scriptbox/domain/naming"
)

var keywords = []string{
	"and", "break", "do", "else", "elseif", "end", "false", "for",
	"function", "goto", "if", "in", "local", "nil", "not", "or",
	"repeat", "return", "then", "true", "until", "while",
}

// base library globals, including the 5.1 ones gopher-lua still defines
var globals = []string{
	"assert", "collectgarbage", "dofile", "error", "getfenv", "getmetatable",
	"ipairs", "load", "loadfile", "loadstring", "module", "newproxy", "next",
	"pairs", "pcall", "print", "rawequal", "rawget", "rawset", "require",
	"select", "setfenv", "setmetatable", "tonumber", "tostring", "type",
	"unpack", "xpcall",
}

var libraries = []string{
	lua.LoadLibName, lua.BaseLibName, lua.TabLibName, lua.IoLibName,
	lua.OsLibName, lua.StringLibName, lua.MathLibName, lua.DebugLibName,
	lua.ChannelLibName, lua.CoroutineLibName,
}

// Lua reserves names starting with an underscore followed by uppercase
// letters (_G, _VERSION, _ENV) for internal globals.
var reserved = naming.NewReservedWordSet(keywords...).
	With(globals...).
	With(libraries...).
	WithPatterns("_[A-Z]*")
