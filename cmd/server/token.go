package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"salestrack/internal/domain/auth"
)

// tokenCmd mints an access token for local development. Production tokens come
// from the identity provider that shares the signing secret.
func tokenCmd() *cobra.Command {
	var (
		userID int64
		email  string
		roles  string
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development access token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			if userID <= 0 {
				return fmt.Errorf("--user must be a positive id")
			}

			jwtCfg := auth.DefaultJWTConfig(cfg.Auth.JWTSecret)
			jwtCfg.Issuer = cfg.Auth.Issuer
			jwtCfg.AccessTokenTTL = cfg.Auth.TokenTTL

			var roleList []string
			if roles != "" {
				roleList = strings.Split(roles, ",")
			}

			token, expires, err := auth.NewJWTService(jwtCfg).GenerateAccessToken(userID, email, roleList)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			log.Infow("token issued", "user_id", userID, "expires_at", expires)
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "user id placed in the uid claim")
	cmd.Flags().StringVar(&email, "email", "", "email claim")
	cmd.Flags().StringVar(&roles, "roles", "", "comma-separated roles, e.g. admin")
	return cmd
}
