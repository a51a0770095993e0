// file: internals/features/users/user_profiles/service/completeness.go
package service

import (
	"strings"
	"time"
)

// ProfileFields adalah potret field yang dibutuhkan untuk kelengkapan profil.
// Nama diambil dari users, sisanya dari user_profiles.
type ProfileFields struct {
	Name      string
	Phone     *string
	Address   *string
	Gender    *string
	Birthdate *time.Time
}

// fieldCheck: validator deklaratif {field, label} — menambah field wajib cukup
// menambah satu baris di tabel ini.
type fieldCheck struct {
	Field  string
	Label  string
	Filled func(p ProfileFields) bool
}

var requiredFields = []fieldCheck{
	{"name", "Nama Lengkap", func(p ProfileFields) bool { return strings.TrimSpace(p.Name) != "" }},
	{"phone", "No. Telepon", func(p ProfileFields) bool { return p.Phone != nil && strings.TrimSpace(*p.Phone) != "" }},
	{"address", "Alamat", func(p ProfileFields) bool { return p.Address != nil && strings.TrimSpace(*p.Address) != "" }},
	{"gender", "Jenis Kelamin", func(p ProfileFields) bool { return p.Gender != nil && strings.TrimSpace(*p.Gender) != "" }},
	{"birthdate", "Tanggal Lahir", func(p ProfileFields) bool { return p.Birthdate != nil && !p.Birthdate.IsZero() }},
}

// MissingField dilaporkan ke frontend agar user tahu apa yang harus dilengkapi.
type MissingField struct {
	Field string `json:"field"`
	Label string `json:"label"`
}

// MissingProfileFields melipat semua validator menjadi satu daftar field kosong.
// Daftar kosong ⇒ profil lengkap.
func MissingProfileFields(p ProfileFields) []MissingField {
	var missing []MissingField
	for _, chk := range requiredFields {
		if !chk.Filled(p) {
			missing = append(missing, MissingField{Field: chk.Field, Label: chk.Label})
		}
	}
	return missing
}

// IsProfileComplete shortcut untuk gate affiliate-join.
func IsProfileComplete(p ProfileFields) bool {
	return len(MissingProfileFields(p)) == 0
}
