package model

import (
	"time"

	"github.com/google/uuid"
)

// Satu sertifikat per (user, event); diterbitkan saat progress memenuhi ambang.
type UserCertificateModel struct {
	UserCertificateID           uuid.UUID `gorm:"column:user_certificate_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"user_certificate_id"`
	UserCertificateUserID       uuid.UUID `gorm:"column:user_certificate_user_id;type:uuid;not null;uniqueIndex:uq_certificates_user_event" json:"user_certificate_user_id"`
	UserCertificateEventID      uuid.UUID `gorm:"column:user_certificate_event_id;type:uuid;not null;uniqueIndex:uq_certificates_user_event" json:"user_certificate_event_id"`
	UserCertificateCode         string    `gorm:"column:user_certificate_code;type:varchar(50);not null;unique" json:"user_certificate_code"`
	UserCertificateScorePercent float64   `gorm:"column:user_certificate_score_percent" json:"user_certificate_score_percent"`
	UserCertificateIssuedAt     time.Time `gorm:"column:user_certificate_issued_at;autoCreateTime" json:"user_certificate_issued_at"`
}

func (UserCertificateModel) TableName() string {
	return "user_certificates"
}
