package dto

import (
	"time"

	"kursusku_backend/internals/features/certificates/model"
)

type CertificateDTO struct {
	UserCertificateID string    `json:"user_certificate_id"`
	EventID           string    `json:"event_id"`
	CertificateCode   string    `json:"certificate_code"`
	ScorePercent      float64   `json:"score_percent"`
	IssuedAt          time.Time `json:"issued_at"`
}

// Dua cabang yang saling eksklusif: sudah punya sertifikat, atau belum layak.
type CertificateStatusDTO struct {
	HasCertificate bool            `json:"has_certificate"`
	Certificate    *CertificateDTO `json:"certificate,omitempty"`
	Message        string          `json:"message,omitempty"`
	TotalScore     *float64        `json:"total_score,omitempty"`
	MinRequired    *float64        `json:"min_required,omitempty"`
}

// NotYetEligibleStatus membangun cabang "belum punya sertifikat". Dua varian:
// event tanpa kuis mendapat pesan generik tanpa pasangan skor; event dengan
// kuis menyertakan total + ambang supaya user tahu kurang berapa.
func NotYetEligibleStatus(hasQuizzes bool, totalScore, minRequired float64) CertificateStatusDTO {
	if !hasQuizzes {
		return CertificateStatusDTO{
			HasCertificate: false,
			Message:        "Event ini belum memiliki kuis yang bisa diselesaikan",
		}
	}
	return CertificateStatusDTO{
		HasCertificate: false,
		Message:        "Selesaikan semua kuis dengan nilai di atas ambang untuk mendapatkan sertifikat",
		TotalScore:     &totalScore,
		MinRequired:    &minRequired,
	}
}

func ToCertificateDTO(m model.UserCertificateModel) CertificateDTO {
	return CertificateDTO{
		UserCertificateID: m.UserCertificateID.String(),
		EventID:           m.UserCertificateEventID.String(),
		CertificateCode:   m.UserCertificateCode,
		ScorePercent:      m.UserCertificateScorePercent,
		IssuedAt:          m.UserCertificateIssuedAt,
	}
}
