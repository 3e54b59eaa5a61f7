package auth

import (
    "crypto/subtle"
    "errors"
    "time"

    "github.com/golang-jwt/jwt/v5"
)

const TokenDuration = 12 * time.Hour

var (
    ErrInvalidCredentials = errors.New("invalid username or password")
    ErrTokenExpired       = errors.New("token expired")
    ErrInvalidToken       = errors.New("invalid token")
)

type Claims struct {
    Username string `json:"username"`
    jwt.RegisteredClaims
}

// JWTService issues and validates the bearer tokens protecting the admin
// endpoints. Credentials come from the environment, there is no user table.
type JWTService struct {
    secretKey     []byte
    issuer        string
    adminUser     string
    adminPassword string
}

func NewJWTService(secretKey, issuer, adminUser, adminPassword string) *JWTService {
    return &JWTService{
        secretKey:     []byte(secretKey),
        issuer:        issuer,
        adminUser:     adminUser,
        adminPassword: adminPassword,
    }
}

func (j *JWTService) Authenticate(username, password string) (string, error) {
    userOK := subtle.ConstantTimeCompare([]byte(username), []byte(j.adminUser)) == 1
    passOK := subtle.ConstantTimeCompare([]byte(password), []byte(j.adminPassword)) == 1
    if !userOK || !passOK {
        return "", ErrInvalidCredentials
    }
    return j.GenerateToken(username)
}

func (j *JWTService) GenerateToken(username string) (string, error) {
    now := time.Now()
    claims := Claims{
        Username: username,
        RegisteredClaims: jwt.RegisteredClaims{
            Issuer:    j.issuer,
            IssuedAt:  jwt.NewNumericDate(now),
            ExpiresAt: jwt.NewNumericDate(now.Add(TokenDuration)),
        },
    }

    token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    return token.SignedString(j.secretKey)
}

func (j *JWTService) ValidateToken(tokenString string) (*Claims, error) {
    token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrInvalidToken
        }
        return j.secretKey, nil
    })
    if err != nil {
        if errors.Is(err, jwt.ErrTokenExpired) {
            return nil, ErrTokenExpired
        }
        return nil, ErrInvalidToken
    }

    claims, ok := token.Claims.(*Claims)
    if !ok || !token.Valid {
        return nil, ErrInvalidToken
    }
    return claims, nil
}
