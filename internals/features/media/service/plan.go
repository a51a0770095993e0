// file: internals/features/media/service/plan.go
//
// ViewerPlan adalah rencana proteksi deklaratif yang dikonsumsi client apa
// adanya: server yang memutuskan bagaimana tiap jenis file boleh ditampilkan.
// Proteksi bersifat advisory (bukan DRM); tujuannya mempersulit, bukan
// mencegah mutlak.
package service

// Mode tampilan per jenis file.
const (
	ViewerModeEmbed       = "embed"       // PDF: penampil native, chrome diminimalkan
	ViewerModeImage       = "image"       // bitmap non-draggable
	ViewerModeInfoCard    = "info_card"   // Office: tanpa render inline
	ViewerModeFrame       = "frame"       // Text: frame same-origin
	ViewerModePlaceholder = "placeholder" // Unknown: kosong terproteksi
)

// Timeout muat default (ms): tidak semua penampil memberi sinyal selesai.
const DefaultLoadTimeoutMS = 15000

type ViewerPlanSpec struct {
	Kind      FileKind `json:"kind"`
	SignedURL string   `json:"signed_url,omitempty"`
	Mode      string   `json:"mode"`

	// proteksi umum, berlaku untuk semua jenis
	SuppressContextMenu bool `json:"suppress_context_menu"`
	// blokir kombinasi modifier + s/p (case-insensitive)
	BlockSavePrintKeys bool `json:"block_save_print_keys"`
	DisableSelection   bool `json:"disable_selection"`
	DisableDrag        bool `json:"disable_drag"`

	LoadTimeoutMS int `json:"load_timeout_ms"`

	// arahan per jenis
	DownloadOverlay bool   `json:"download_overlay,omitempty"` // PDF: tutup area kontrol unduh
	WatermarkBadge  bool   `json:"watermark_badge,omitempty"`  // Image: badge "protected"
	OpenInNewURL    string `json:"open_in_new_url,omitempty"`  // Office: satu-satunya jalan keluar
	SameOriginFrame bool   `json:"same_origin_frame,omitempty"`
	// Unknown: tidak pernah ada fallback link; field URL sengaja kosong
}

// ViewerPlan menurunkan rencana tampilan untuk satu file. Dispatch exhaustive
// atas enum FileKind; Unknown menghasilkan placeholder, bukan error.
func ViewerPlan(kind FileKind, signedURL string) ViewerPlanSpec {
	plan := ViewerPlanSpec{
		Kind:                kind,
		SuppressContextMenu: true,
		BlockSavePrintKeys:  true,
		DisableSelection:    true,
		DisableDrag:         true,
		LoadTimeoutMS:       DefaultLoadTimeoutMS,
	}

	switch kind {
	case KindPDF:
		plan.Mode = ViewerModeEmbed
		plan.SignedURL = signedURL
		plan.DownloadOverlay = true
	case KindImage:
		plan.Mode = ViewerModeImage
		plan.SignedURL = signedURL
		plan.WatermarkBadge = true
	case KindOffice:
		plan.Mode = ViewerModeInfoCard
		plan.OpenInNewURL = signedURL
	case KindText:
		plan.Mode = ViewerModeFrame
		plan.SignedURL = signedURL
		plan.SameOriginFrame = true
	default:
		plan.Mode = ViewerModePlaceholder
	}

	return plan
}
