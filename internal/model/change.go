package model

// TextChange records one rewritten specifier.
type TextChange struct {
	Original    string `json:"original" yaml:"original"`
	Replacement string `json:"replacement" yaml:"replacement"`
}

// FileChange is the rewritten text of one file and the specifiers that changed.
type FileChange struct {
	File    Path         `json:"file" yaml:"file"`
	Text    string       `json:"-" yaml:"-"`
	Changes []TextChange `json:"changes" yaml:"changes"`
}
