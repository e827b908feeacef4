package model

// ResolutionType tells how an import path was matched on disk.
type ResolutionType string

const (
	// ResolvedFile means the path, or the path with an extension, named a file.
	ResolvedFile ResolutionType = "file"
	// ResolvedDirectory means the path named a directory holding an index file.
	ResolvedDirectory ResolutionType = "directory"
)

// Resolution is the concrete file an import path denotes.
type Resolution struct {
	// File is the existing file that was found.
	File Path
	// Imported is the path that was probed, possibly a directory.
	Imported Path
	Type     ResolutionType
}
