package utils

import (
	"errors"
	"os"
	"time"

	"tripforge/config"
	"tripforge/models"

	"github.com/golang-jwt/jwt"
)

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = os.Getenv("JWT_SECRET")
	}
	return []byte(secret)
}

// GenerateToken creates a signed JWT token carrying the user's identity and
// role scope. The token expires after the specified duration.
func GenerateToken(user models.User, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":       user.ID,
		"email":     user.Email,
		"companyId": user.CompanyID,
		"role":      string(user.Role),
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// UserFromToken extracts the authenticated user from a valid JWT token string.
func UserFromToken(tokenString string) (models.User, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return models.User{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return models.User{}, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return models.User{}, errors.New("token does not contain a valid 'sub' claim")
	}

	user := models.User{ID: sub}
	if email, ok := claims["email"].(string); ok {
		user.Email = email
	}
	if companyID, ok := claims["companyId"].(string); ok {
		user.CompanyID = companyID
	}
	if role, ok := claims["role"].(string); ok {
		user.Role = models.Role(role)
	}
	return user, nil
}
