package core

import (
	"runtime"
	"strings"
)

// CallerTag returns the bare name of the calling function, for use as
// the TAG / APP-NAME field when the logger has no configured tag.
// skip counts frames above CallerTag itself, as in runtime.Caller.
func CallerTag(skip int) string {
	pc, _, _, ok := runtime.Caller(skip + 1)
	if !ok {
		return "-"
	}

	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "-"
	}

	// fn.Name() is fully qualified, e.g. "path/to/pkg.(*T).Method".
	// Keep only the part after the package path and package name.
	name := fn.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
