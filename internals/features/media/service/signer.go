// file: internals/features/media/service/signer.go
//
// URL media ditandatangani HMAC-SHA256 dengan masa berlaku pendek. Path
// storage asli tidak pernah keluar; client hanya memegang filename + exp +
// signature, dan endpoint streaming memverifikasi keduanya.
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Masa berlaku default URL signed.
const SignedURLTTL = 5 * time.Minute

type Signer struct {
	secret []byte
}

func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// Filename: segmen terakhir dari path storage; hanya ini yang diekspos.
func Filename(storagePath string) string {
	path := storagePath
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if i := strings.LastIndex(path, "/"); i >= 0 {
		path = path[i+1:]
	}
	return path
}

func (s *Signer) signature(filename string, exp int64) string {
	mac := hmac.New(sha256.New, s.secret)
	fmt.Fprintf(mac, "%s:%d", filename, exp)
	return hex.EncodeToString(mac.Sum(nil))
}

// SignedURL membuat path relatif beserta exp + signature untuk satu filename.
func (s *Signer) SignedURL(basePath, filename string) string {
	exp := time.Now().Add(SignedURLTTL).Unix()
	return fmt.Sprintf("%s/%s?exp=%d&sig=%s", basePath, filename, exp, s.signature(filename, exp))
}

// Verify mengecek signature dan masa berlaku. Keduanya harus lolos.
func (s *Signer) Verify(filename, expStr, sig string) error {
	exp, err := strconv.ParseInt(expStr, 10, 64)
	if err != nil {
		return fmt.Errorf("exp tidak valid")
	}
	if time.Now().Unix() > exp {
		return fmt.Errorf("URL sudah kedaluwarsa")
	}
	expected := s.signature(filename, exp)
	if !hmac.Equal([]byte(expected), []byte(sig)) {
		return fmt.Errorf("signature tidak cocok")
	}
	return nil
}
