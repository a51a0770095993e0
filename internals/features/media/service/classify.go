// file: internals/features/media/service/classify.go
//
// Klasifikasi file murni dari ekstensi path (query string dibuang, huruf
// disamakan kecil). Enum tertutup; dispatch viewer harus exhaustive.
package service

import "strings"

type FileKind string

const (
	KindPDF     FileKind = "pdf"
	KindImage   FileKind = "image"
	KindOffice  FileKind = "office"
	KindText    FileKind = "text"
	KindUnknown FileKind = "unknown"
)

var extKinds = map[string]FileKind{
	"pdf": KindPDF,

	"jpg": KindImage, "jpeg": KindImage, "png": KindImage, "gif": KindImage,
	"webp": KindImage, "bmp": KindImage, "svg": KindImage,

	"ppt": KindOffice, "pptx": KindOffice, "doc": KindOffice, "docx": KindOffice,
	"xls": KindOffice, "xlsx": KindOffice,

	"txt": KindText, "md": KindText, "json": KindText, "xml": KindText, "csv": KindText,
}

// Classify menentukan jenis file dari URL/path mentah. Hanya bagian path yang
// dilihat: query string dan fragment tidak ikut menentukan ekstensi.
func Classify(rawURL string) FileKind {
	path := rawURL
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}

	dot := strings.LastIndex(path, ".")
	if dot < 0 || dot == len(path)-1 {
		return KindUnknown
	}
	ext := strings.ToLower(path[dot+1:])
	// ekstensi tidak mungkin mengandung pemisah path
	if strings.ContainsAny(ext, "/\\") {
		return KindUnknown
	}

	if kind, ok := extKinds[ext]; ok {
		return kind
	}
	return KindUnknown
}
