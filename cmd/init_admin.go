package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"cidian/internal/server"
	"cidian/internal/service"
)

var initAdminCmd = &cobra.Command{
	Use:   "init-admin",
	Short: "Create or re-activate the initial super admin",
	Long: `Create a SUPER_ADMIN account in the configured store. If the username
already exists the account is re-activated and promoted; its password is kept.
Values fall back to INIT_ADMIN_USERNAME, INIT_ADMIN_EMAIL and INIT_ADMIN_PASSWORD.`,
	RunE: runInitAdmin,
}

func init() {
	rootCmd.AddCommand(initAdminCmd)

	flags := initAdminCmd.Flags()
	flags.String("username", envOr("INIT_ADMIN_USERNAME", "admin"), "admin username")
	flags.String("email", envOr("INIT_ADMIN_EMAIL", "admin@example.com"), "admin email")
	flags.String("password", envOr("INIT_ADMIN_PASSWORD", "admin123"), "admin password")
	flags.String("store-driver", "", "store driver override (sqlite/mongo)")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func runInitAdmin(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	if driver, _ := cmd.Flags().GetString("store-driver"); driver != "" {
		cfg.Store.Driver = driver
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	username, _ := cmd.Flags().GetString("username")
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

	store, err := server.OpenStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	defer func() {
		if err := store.Close(ctx); err != nil {
			log.Error().Err(err).Msg("failed to close store")
		}
	}()

	admin, created, err := service.NewAdminService(store.Admins).EnsureSuperAdmin(ctx, service.CreateAdminInput{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize super admin: %w", err)
	}

	if created {
		log.Info().Str("admin_id", admin.ID).Str("username", admin.Username).Msg("super admin created")
		if password == "admin123" {
			log.Warn().Msg("default password in use, change it after first login")
		}
	} else {
		log.Info().Str("admin_id", admin.ID).Str("username", admin.Username).Msg("super admin already exists, re-activated")
	}
	return nil
}
