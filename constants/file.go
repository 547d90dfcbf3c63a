package constants

import "strings"

// FileTypePDF is the only report format ATI delivers.
const FileTypePDF = "PDF"

// FileTypes holds the allowed file types for the format field in ParseJob.
var FileTypes = []string{FileTypePDF}

// AllowedExtensions holds the allowed file extensions for report ingestion.
// ATI delivers reports exclusively as PDF.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
