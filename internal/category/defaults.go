package category

// DefaultTable returns the built-in category-to-extension table. The
// returned map is a fresh copy, safe for callers to modify before
// passing to New.
func DefaultTable() map[string][]string {
	return map[string][]string{
		"Images": {
			"jpg", "jpeg", "png", "gif", "bmp", "tiff", "webp", "svg",
		},
		"Documents": {
			"pdf", "doc", "docx", "txt", "rtf", "odt",
			"xls", "xlsx", "ppt", "pptx", "md", "csv",
		},
		"Videos": {
			"mp4", "mkv", "mov", "avi", "wmv", "flv", "webm",
		},
		"Audio": {
			"mp3", "wav", "aac", "flac", "ogg", "m4a",
		},
		"Archives": {
			"zip", "rar", "7z", "tar", "gz", "bz2", "xz",
		},
	}
}
