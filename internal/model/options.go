package model

// Options are the program settings after flags, environment and the
// configuration file have been merged.
type Options struct {
	Project  string `mapstructure:"project"`
	Src      string `mapstructure:"src"`
	Out      string `mapstructure:"out"`
	Ext      string `mapstructure:"ext"`
	Verbose  bool   `mapstructure:"verbose"`
	NoEmit   bool   `mapstructure:"noEmit"`
	Parallel int    `mapstructure:"parallel"`
	Report   string `mapstructure:"report"`
}

// PathMapping is one compilerOptions.paths entry.
type PathMapping struct {
	Key  string
	Dirs []string
}

// CompilerOptions is the subset of tsconfig compilerOptions the program reads.
// RootDir, OutDir and BaseURL are absolute when set. Paths keeps declaration
// order and its directories as written; without a BaseURL they are relative
// to PathsBase, the directory of the tsconfig that declared them.
type CompilerOptions struct {
	RootDir   string
	OutDir    string
	BaseURL   string
	Paths     []PathMapping
	PathsBase string
}

// TSConfig is a loaded tsconfig file with its extends chain applied.
type TSConfig struct {
	File            Path
	CompilerOptions CompilerOptions
}
