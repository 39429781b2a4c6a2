package port

// XDGPaths resolves the per-user directories bomtool reads and writes.
type XDGPaths interface {
	ConfigDir() (string, error)
	DataDir() (string, error)
	StateDir() (string, error)
	LogDir() (string, error)
}
