package locale

import "github.com/Project-Sylos/Mirage/internal/deprecation"

// moduleAliases maps legacy module names to their replacements.
var moduleAliases = map[string]struct {
	canonical string
	notice    deprecation.Notice
}{
	"address": {
		canonical: "location",
		notice: deprecation.Notice{
			Deprecated: "definitions.address",
			Proposed:   "definitions.location",
			Since:      "8.0",
			Until:      "10.0",
		},
	},
	"name": {
		canonical: "person",
		notice: deprecation.Notice{
			Deprecated: "definitions.name",
			Proposed:   "definitions.person",
			Since:      "8.0",
			Until:      "10.0",
		},
	},
}

// Canonical returns the current name of module, if module is a legacy alias.
func Canonical(module string) (string, bool) {
	alias, ok := moduleAliases[module]
	if !ok {
		return module, false
	}
	return alias.canonical, true
}
