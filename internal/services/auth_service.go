package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/joblens/joblens/internal/utils"
)

const sessionTTL = 12 * time.Hour

// AuthService grants dashboard access. One shared password protects
// the whole application; a correct password yields a signed session
// token. Sessions without a known account get a fresh uuid so tracker
// rows still key on (job_id, user_id).
type AuthService interface {
	Login(password, userID string) (token string, resolvedUserID string, err error)
}

type authService struct {
	sharedPassword string
	jwtSecret      []byte
}

func NewAuthService(sharedPassword string, jwtSecret []byte) AuthService {
	return &authService{sharedPassword: sharedPassword, jwtSecret: jwtSecret}
}

func (s *authService) Login(password, userID string) (string, string, error) {
	const op = "AuthService.Login"

	if len(s.jwtSecret) == 0 {
		return "", "", utils.E(utils.CodeInternal, op, "JWT secret is not configured", nil)
	}
	if !utils.CheckSharedPassword(s.sharedPassword, password) {
		return "", "", utils.E(utils.CodeUnauthorized, op, "incorrect password", nil)
	}

	anonymous := userID == ""
	if anonymous {
		userID = uuid.NewString()
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID,
		"anon": anonymous,
		"iat":  now.Unix(),
		"exp":  now.Add(sessionTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", "", utils.E(utils.CodeInternal, op, "failed to sign session token", err)
	}
	return token, userID, nil
}
