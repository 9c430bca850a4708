package assettypes

// FileDescriptor is one entry of an asset listing, shaped for template data.
type FileDescriptor struct {
	Path string `json:"path" yaml:"path" toml:"path"`
	Name string `json:"name" yaml:"name" toml:"name"`
	Size int64  `json:"size" yaml:"size" toml:"size"`
}

// TotalSize sums the sizes of all descriptors.
func TotalSize(descs []FileDescriptor) int64 {
	var total int64
	for _, d := range descs {
		total += d.Size
	}
	return total
}
