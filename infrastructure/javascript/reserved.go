package javascript

import "github.com/reglet-dev/scriptbox/domain/naming"

// keywords covers ECMAScript keywords plus the future-reserved words of
// earlier editions, which engines still reject in some contexts.
var keywords = []string{
	"abstract", "arguments", "await", "boolean", "break", "byte",
	"case", "catch", "char", "class", "const",
	"continue", "debugger", "default", "delete", "do",
	"double", "else", "enum", "eval", "export",
	"extends", "false", "final", "finally", "float",
	"for", "function", "goto", "if", "implements",
	"import", "in", "instanceof", "int", "interface",
	"let", "long", "native", "new", "null",
	"package", "private", "protected", "public", "return",
	"short", "static", "super", "switch", "synchronized",
	"this", "throw", "throws", "transient", "true",
	"try", "typeof", "var", "void", "volatile",
	"while", "with", "yield",
}

// globals are built-in objects, properties and methods that a bare variable
// declaration would shadow.
var globals = []string{
	"Array", "Date", "hasOwnProperty",
	"Infinity", "isFinite", "isNaN", "isPrototypeOf", "length",
	"Math", "NaN", "name", "Number", "Object",
	"prototype", "String", "toString", "undefined", "valueOf",
	"globalThis", "Symbol", "JSON", "Promise", "Proxy", "Reflect",
	"Map", "Set", "WeakMap", "WeakSet", "RegExp", "Error", "TypeError",
	"RangeError", "SyntaxError", "ReferenceError", "EvalError", "URIError",
	"Boolean", "Function", "ArrayBuffer", "DataView",
	"parseInt", "parseFloat", "encodeURI", "encodeURIComponent",
	"decodeURI", "decodeURIComponent", "escape", "unescape",
	"__proto__", "constructor",
}

var reserved = naming.NewReservedWordSet(keywords...).With(globals...)
