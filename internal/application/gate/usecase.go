package gate

import (
	"github.com/google/uuid"

	"github.com/remodj/billing-api/internal/domain"
	domaingate "github.com/remodj/billing-api/internal/domain/gate"
	"github.com/remodj/billing-api/pkg/jwt"
)

// JWTConfig settings for issuing session tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase exchanges the 4-digit access code for a session token. The token
// marks a session as Unlocked; it is a convenience for the browser, not an
// authentication scheme.
type UseCase struct {
	gate *domaingate.Gate
	jwt  JWTConfig
}

// NewUseCase builds the use case around the configured gate.
func NewUseCase(g *domaingate.Gate, jwtCfg JWTConfig) *UseCase {
	return &UseCase{gate: g, jwt: jwtCfg}
}

// Unlock runs the Locked → Unlocked transition for a fresh session. A wrong
// code returns domain.ErrUnauthorized and the session stays locked.
func (uc *UseCase) Unlock(code string) (token string, err error) {
	session := domaingate.NewSession(uc.gate)
	if !session.Unlock(code) {
		return "", domain.ErrUnauthorized
	}
	return jwt.Generate(uc.jwt.Secret, uuid.New().String(), uc.jwt.Issuer, uc.jwt.ExpMinutes)
}
