package controller

// List item types.
type fileItem struct {
	path    string
	count   int
	details []string
}

func (f fileItem) FilterValue() string {
	return f.path
}
