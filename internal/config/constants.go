package config

// Version is the current rbtypegraph version.
var Version = "0.1.0"

const SourceFileExt = ".rb"

// SourceFileExtensions are all recognized source file extensions.
var SourceFileExtensions = []string{".rb", ".rbs"}

// TrimSourceExt removes any recognized source extension from a
// filename. Returns the original string if no extension matches.
func TrimSourceExt(name string) string {
	for _, ext := range SourceFileExtensions {
		if len(name) >= len(ext) && name[len(name)-len(ext):] == ext {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

// HasSourceExt returns true if path ends with any recognized source
// extension.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// IsTestMode indicates the program is running under its own test
// suite's CLI entry point rather than a normal walk.
var IsTestMode = false

// Attr hook method names the call-hook dispatcher recognizes at class
// scope.
const (
	AttrReaderName   = "attr_reader"
	AttrWriterName   = "attr_writer"
	AttrAccessorName = "attr_accessor"
)

// Visibility directive method names.
const (
	PrivateDirectiveName   = "private"
	ProtectedDirectiveName = "protected"
	PublicDirectiveName    = "public"
)

// NewMethodName is the constructor call the singleton-call return-type
// special case recognizes.
const NewMethodName = "new"
