package classorg

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Group and sort utility class names"
	MsgInitShort       = "Write a starter classorg.toml to the current directory"
	MsgDocsShort       = "Show the full classorg documentation"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig     = "Path to a config file (replaces user and local configs)"
	MsgFlagGroups     = "Ordered group identifiers: patterns, preset names, or $DEFAULT"
	MsgFlagSort       = "Sort mode: asc, desc, unocss, or none"
	MsgFlagIgnoreCase = "Case-insensitive pattern matching"
	MsgFlagFormat     = "Output format: text, json, or table"
	MsgFlagInput      = "Extract class names from a file instead of arguments"

	// Status messages
	MsgNoValues          = "no class names to organize: pass them as arguments, pipe them in, or use --input"
	MsgConfigWritten     = "Wrote starter config to %s\n"
	MsgConfigExistsError = "%s already exists, refusing to overwrite"
)

const MsgRootLong = `classorg groups a list of utility class names into named groups using
pattern rules, then optionally sorts each group.

Values come from command arguments, from stdin, or from a file via --input
(class attributes in markup, class selectors in stylesheets). Groups are
resolved left to right; values no pattern matches land in the $DEFAULT
group, which always exists.`

const MsgRootExample = `  # Group ad-hoc values with an inline pattern
  classorg --groups '^m-,$DEFAULT' m-2 flex m-1 bg-red

  # Use the built-in presets and the heuristic CSS ordering
  classorg --groups 'layout,spacing,$DEFAULT' --sort unocss flex p-1 bg-red mt-2

  # Organize every class found in a stylesheet, as JSON
  classorg --input styles.css --format json`
