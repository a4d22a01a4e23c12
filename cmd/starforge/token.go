package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"starforge-server/internal/auth"
	"starforge-server/internal/shared/config"
)

var (
	tokenSubject string
	tokenRole    string
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a service JWT for the API",
	Long: `Mint a JWT signed with the configured secret. Admin-role tokens are
accepted by the sector generation endpoint.`,
	RunE: runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "starforge-cli", "token subject")
	tokenCmd.Flags().StringVar(&tokenRole, "role", auth.RoleAdmin, "token role")
}

func runToken(cmd *cobra.Command, args []string) error {
	if err := config.Init(); err != nil {
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}

	token, err := auth.GenerateToken(tokenSubject, tokenRole)
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	fmt.Println(token)
	return nil
}
