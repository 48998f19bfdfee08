// flags.go defines constants for all CLI flag names.
//
// Using constants instead of string literals prevents typos and enables
// compile-time checking when flag names are used in both Flags().Type()
// definitions and GetType() calls.
//
// Naming convention: Flag<PascalCaseName> where name matches the kebab-case
// CLI flag (e.g., "no-colour" -> FlagNoColour).

package extension

// Flag name constants for CLI commands.
const (
	// Boolean flags

	FlagExplain  = "explain"   // Print the composed query instead of running it
	FlagLocal    = "local"     // Use local scope (gitignored)
	FlagLong     = "long"      // Long format output
	FlagNoColour = "no-colour" // Plain diff output
	FlagRaw      = "raw"       // Raw output without formatting
	FlagShare    = "share"     // Mark as shared (committed)

	// String flags

	FlagPath = "path" // Path segment filter (repeatable)
)
