package libdiff

const (
	DeleteKey = "-"
	InsertKey = "+"
	PatchKey  = "~"
)
