package listing

import "strings"

// SupportedExtensions is the fixed set of file types the editor handles.
// Keys are lowercase and include the leading dot.
var SupportedExtensions = map[string]bool{
	".txt":  true,
	".py":   true,
	".js":   true,
	".html": true,
	".md":   true,
	".css":  true,
	".json": true,
	".xml":  true,
	".yaml": true,
	".yml":  true,
	".dart": true,
	".java": true,
	".cpp":  true,
	".c":    true,
}

// IsSupportedExtension reports whether ext names an editable file type.
// The comparison is case-insensitive.
func IsSupportedExtension(ext string) bool {
	return SupportedExtensions[strings.ToLower(ext)]
}
