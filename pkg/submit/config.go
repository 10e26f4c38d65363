package submit

// Arguments holds the options of one run.
type Arguments struct {
	Root             string   // Project root; files are listed relative to it.
	Output           string   // Destination PDF path.
	Header           string   // Optional header text file, relative to Root unless absolute.
	IgnoreFile       string   // Optional global ignore file, applied before Root's .codepdfignore.
	ExtraExtensions  []string // Extensions added to the default include rules.
	ExtraExcludeDirs []string // Directory names added to the default exclusions.
	Tree             bool     // List the included files in the header section.
	Verbose          bool     // Log every selection decision.
}
