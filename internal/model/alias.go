package model

// Alias maps an import prefix declared in compilerOptions.paths to the
// directories it may resolve to. Paths are tried in declared order.
type Alias struct {
	Key    string `json:"key" yaml:"key"`
	Prefix string `json:"prefix" yaml:"prefix"`
	Paths  []Path `json:"paths" yaml:"paths"`
}

// ProjectPaths holds the absolute locations the program works with.
// Source and Target are used to map a compiled file back to its source-tree
// counterpart.
type ProjectPaths struct {
	BasePath   Path
	// AliasBase is the directory compilerOptions.paths entries resolve from.
	AliasBase  Path
	ConfigPath Path
	ConfigFile Path
	Source     Path
	Target     Path
}
