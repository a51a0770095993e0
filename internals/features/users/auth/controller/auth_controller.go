package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kursusku_backend/internals/configs"
	"kursusku_backend/internals/features/users/auth/dto"
	"kursusku_backend/internals/features/users/auth/model"
	helper "kursusku_backend/internals/helpers"
)

var validate = validator.New()

const accessTokenTTL = 24 * time.Hour

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// =============================
// ➕ Register
// =============================
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var body dto.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := model.UserModel{
		UserName: body.UserName,
		Email:    strings.ToLower(strings.TrimSpace(body.Email)),
		Password: string(hashed),
		IsActive: true,
	}

	if err := ctrl.DB.Create(&user).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return fiber.NewError(fiber.StatusBadRequest, "Email sudah terdaftar")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat user")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registrasi berhasil", fiber.Map{
		"user_id":   user.ID,
		"user_name": user.UserName,
		"email":     user.Email,
	})
}

// =============================
// 🔐 Login
// =============================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	if err := ctrl.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(body.Email))).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
	}

	if !user.IsActive {
		return fiber.NewError(fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
	}

	return ctrl.issueTokens(c, user)
}

// =============================
// 🔐 Login via Google (ID token)
// =============================
func (ctrl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var body dto.GoogleLoginRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	// Verifikasi token Google
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(body.IDToken, []string{configs.GoogleClientID}); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid Google ID Token")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(body.IDToken)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to decode ID Token")
	}
	email, name, googleID := claimSet.Email, claimSet.Name, claimSet.Sub

	var user model.UserModel
	err = ctrl.DB.Where("google_id = ?", googleID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// User belum ada -> buat baru dengan password dummy acak
		dummy, _ := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
		user = model.UserModel{
			UserName: name,
			Email:    strings.ToLower(email),
			Password: string(dummy),
			GoogleID: &googleID,
			IsActive: true,
		}
		if err := ctrl.DB.Create(&user).Error; err != nil {
			low := strings.ToLower(err.Error())
			if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
				return fiber.NewError(fiber.StatusBadRequest, "Email sudah terdaftar")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create Google user")
		}
		log.Println("[SUCCESS] User Google baru dibuat:", user.Email)
	} else if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
	}

	if !user.IsActive {
		return fiber.NewError(fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	return ctrl.issueTokens(c, user)
}

// =============================
// 🚪 Logout (token masuk blacklist)
// =============================
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	auth := strings.TrimSpace(c.Get("Authorization"))
	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return fiber.NewError(fiber.StatusBadRequest, "Token tidak ditemukan")
	}
	tokenString := strings.Trim(fields[1], "\"'")

	entry := model.TokenBlacklist{
		Token:     tokenString,
		ExpiredAt: time.Now().Add(accessTokenTTL),
	}
	if err := ctrl.DB.Create(&entry).Error; err != nil {
		low := strings.ToLower(err.Error())
		if !strings.Contains(low, "duplicate key") && !strings.Contains(low, "unique") {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal logout")
		}
	}

	return helper.Success(c, "Logout berhasil", nil)
}

// issueTokens menandatangani access token dan mengembalikan response login
func (ctrl *AuthController) issueTokens(c *fiber.Ctx, user model.UserModel) error {
	now := time.Now().UTC()

	claims := jwt.MapClaims{
		"id":        user.ID.String(),
		"user_name": user.UserName,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	accessToken, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat token")
	}

	refreshClaims := jwt.MapClaims{
		"sub": user.ID.String(),
		"iat": now.Unix(),
		"exp": now.Add(7 * 24 * time.Hour).Unix(),
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).
		SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}

	return helper.Success(c, "Login berhasil", dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		UserID:       user.ID.String(),
		UserName:     user.UserName,
		Email:        user.Email,
	})
}
