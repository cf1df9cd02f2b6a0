package auth

import (
	"testing"
	"time"

	"github.com/hoseki-store/joyeria/internal/config"
	"golang.org/x/crypto/bcrypt"
)

func TestNewPasswordHasher(t *testing.T) {
	hasher := newPasswordHasher()
	bcryptHasher, ok := hasher.(*BcryptHasher)
	if !ok {
		t.Fatalf("expected *BcryptHasher, got %T", hasher)
	}
	if bcryptHasher.cost != bcrypt.DefaultCost {
		t.Fatalf("unexpected cost: %d", bcryptHasher.cost)
	}
}

func TestNewTokenStrategy(t *testing.T) {
	strategy := newTokenStrategy(strategyParams{Config: &config.Config{
		TokenSecret:   "top-secret",
		TokenStrategy: "jwt",
		TokenTTL:      2 * time.Hour,
	}})
	jwtStrategy, ok := strategy.(*JWTStrategy)
	if !ok {
		t.Fatalf("expected *JWTStrategy, got %T", strategy)
	}
	if string(jwtStrategy.secret) != "top-secret" {
		t.Fatalf("unexpected secret: %q", string(jwtStrategy.secret))
	}
	if jwtStrategy.ttl != 2*time.Hour {
		t.Fatalf("unexpected ttl: %s", jwtStrategy.ttl)
	}

	strategy = newTokenStrategy(strategyParams{Config: &config.Config{
		TokenSecret:   "top-secret",
		TokenStrategy: "hmac",
	}})
	if _, ok := strategy.(*HMACStrategy); !ok {
		t.Fatalf("expected *HMACStrategy, got %T", strategy)
	}
}
