// clinicctl is the operator CLI. It exists so that staff accounts are
// provisioned deliberately instead of being seeded with default passwords
// at first boot.
package main

import (
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/medorahq/clinic-api/internal/config"
	"github.com/medorahq/clinic-api/internal/repository/sqlstore"
	userservice "github.com/medorahq/clinic-api/internal/service/user"
	"github.com/medorahq/clinic-api/pkg/security"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clinicctl",
		Short: "Clinic API operations tool",
	}

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(userCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create database tables if they do not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			if err := sqlstore.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			fmt.Println("schema up to date")
			return nil
		},
	}
}

func userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage staff accounts",
	}
	cmd.AddCommand(userCreateCmd())
	cmd.AddCommand(userListCmd())
	return cmd
}

func userCreateCmd() *cobra.Command {
	var username, role, password string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Provision a staff account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				password = os.Getenv("CLINIC_USER_PASSWORD")
			}
			if password == "" {
				return fmt.Errorf("password required: pass --password or set CLINIC_USER_PASSWORD")
			}

			db, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			if err := sqlstore.Migrate(cmd.Context(), db); err != nil {
				return err
			}

			svc := userservice.NewService(
				sqlstore.NewUserRepository(db),
				security.NewBcryptHasher(12),
			)

			user, err := svc.Provision(cmd.Context(), username, password, role)
			if err != nil {
				return err
			}

			fmt.Printf("created user %q (id=%d, role=%s)\n", user.Username, user.ID, user.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "account username")
	cmd.Flags().StringVar(&role, "role", "", "account role: admin, doctor or reception")
	cmd.Flags().StringVar(&password, "password", "", "account password (or CLINIC_USER_PASSWORD)")
	cmd.MarkFlagRequired("username") //nolint:errcheck
	cmd.MarkFlagRequired("role")     //nolint:errcheck

	return cmd
}

func userListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List staff accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			svc := userservice.NewService(
				sqlstore.NewUserRepository(db),
				security.NewBcryptHasher(12),
			)

			users, err := svc.List(cmd.Context())
			if err != nil {
				return err
			}

			for _, u := range users {
				fmt.Printf("%d\t%s\t%s\t%s\n", u.ID, u.Username, u.Role, u.CreatedAt.Format("2006-01-02"))
			}
			return nil
		},
	}
}

func openDB() (*sqlx.DB, error) {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	return sqlstore.Open(cfg.Database)
}
