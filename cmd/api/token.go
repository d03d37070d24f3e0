package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"cattle-farm-manager/internal/adapters/auth/jwtauth"
	"cattle-farm-manager/internal/ports/auth"
)

var (
	tokenUser  string
	tokenName  string
	tokenEmail string
	tokenTTL   time.Duration
)

// tokenCmd emite tokens HS256 para entornos sin proveedor de identidad.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Emite un token firmado con auth.jwt_secret",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Auth.JWTSecret == "" {
			return errors.New("auth.jwt_secret is required")
		}
		if tokenUser == "" {
			return errors.New("--user is required")
		}
		v := jwtauth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)
		tok, err := v.Issue(auth.Claims{
			UserID:      tokenUser,
			DisplayName: tokenName,
			Email:       tokenEmail,
		}, tokenTTL)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), tok)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenUser, "user", "", "id de la cuenta (sub)")
	tokenCmd.Flags().StringVar(&tokenName, "name", "", "nombre visible")
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "correo")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "vigencia del token")
}
