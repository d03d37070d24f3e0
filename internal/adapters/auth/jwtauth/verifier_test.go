package jwtauth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"cattle-farm-manager/internal/ports/auth"
)

func TestVerifier_RoundTrip(t *testing.T) {
	v := NewVerifier("s3cret", "cattle-farm")

	tok, err := v.Issue(auth.Claims{UserID: "u1", DisplayName: "Ana", Email: "ana@finca.test", Role: "admin"}, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	got, err := v.Verify(context.Background(), tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if got.UserID != "u1" || got.DisplayName != "Ana" || got.Email != "ana@finca.test" || got.Role != "admin" {
		t.Fatalf("unexpected claims: %+v", got)
	}
}

func TestVerifier_Rejects(t *testing.T) {
	v := NewVerifier("s3cret", "cattle-farm")
	ctx := context.Background()

	other := NewVerifier("otro", "cattle-farm")
	forged, _ := other.Issue(auth.Claims{UserID: "u1"}, time.Hour)
	if _, err := v.Verify(ctx, forged); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}

	expired, _ := v.Issue(auth.Claims{UserID: "u1"}, -time.Minute)
	if _, err := v.Verify(ctx, expired); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}

	foreign := NewVerifier("s3cret", "otro-emisor")
	wrongIss, _ := foreign.Issue(auth.Claims{UserID: "u1"}, time.Hour)
	if _, err := v.Verify(ctx, wrongIss); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong issuer, got %v", err)
	}

	noSub, _ := v.Issue(auth.Claims{}, time.Hour)
	if _, err := v.Verify(ctx, noSub); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken without sub, got %v", err)
	}

	// alg distinto a HS256
	hs512, _ := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "u1",
		Issuer:    "cattle-farm",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("s3cret"))
	if _, err := v.Verify(ctx, hs512); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for HS512, got %v", err)
	}
}

func TestVerifier_NotConfigured(t *testing.T) {
	v := NewVerifier("  ", "")
	if _, err := v.Verify(context.Background(), "x"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
