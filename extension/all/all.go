// Package all imports all built-in faqd extensions.
// Import this package to register all built-in commands.
package all

import (
	_ "github.com/jpl-au/faqd/extension/browse"
	_ "github.com/jpl-au/faqd/extension/core"
	_ "github.com/jpl-au/faqd/extension/taxonomy"
)
