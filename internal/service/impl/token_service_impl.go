package impl

import (
	"strconv"
	"sync/atomic"
	"time"

	"messaging-api/internal/observability/metrics"

	"github.com/golang-jwt/jwt/v5"
)

type TokenConfig struct {
	Issuer     string
	TTL        time.Duration // e.g. 1h
	SigningKey []byte        // HS256 secret
}

type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type TokenServiceImpl struct {
	cfg TokenConfig
	// jti sequence is owned by the instance, not the process, so concurrent
	// instances never share counter state.
	jtiSeq atomic.Uint64
	now    func() time.Time
}

func NewTokenServiceHS256(cfg TokenConfig) *TokenServiceImpl {
	return &TokenServiceImpl{cfg: cfg, now: time.Now}
}

func (t *TokenServiceImpl) Issue(username string) (string, error) {
	result := "success"
	defer func() {
		metrics.TokensIssuedTotal.WithLabelValues(result).Inc()
	}()

	now := t.now().UTC()
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.cfg.Issuer,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.cfg.TTL)),
			ID:        strconv.FormatUint(t.jtiSeq.Add(1), 10),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.cfg.SigningKey)
	if err != nil {
		result = "failure"
		return "", err
	}
	return signed, nil
}

func (t *TokenServiceImpl) Parse(tokenStr string) (string, error) {
	claims := &Claims{}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return t.now() }),
	)
	tok, err := parser.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return t.cfg.SigningKey, nil
	})
	if err != nil || !tok.Valid {
		return "", ErrInvalidToken
	}
	if claims.Issuer != t.cfg.Issuer {
		return "", ErrInvalidToken
	}
	if claims.Username == "" {
		return "", ErrInvalidToken
	}
	return claims.Username, nil
}
