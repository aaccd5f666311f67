package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"academy/config"
	"academy/internal/domain/entity"
	"academy/internal/errors"
	"academy/internal/infra/auth"
	"academy/internal/infra/invoice"
	logs "academy/internal/infra/log"
	"academy/internal/infra/persistence/postgres"
	"academy/internal/infra/qrcode"
	"academy/internal/usecase"
	"academy/internal/usecase/impl"
	"academy/internal/util"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// app holds what every command needs once the database is open.
type app struct {
	cfg        *config.Config
	logger     *slog.Logger
	db         *gorm.DB
	accountUC  usecase.AccountUsecase
	purchaseUC usecase.PurchaseUsecase
}

func newApp() (*app, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return nil, err
	}

	if cfg.Postgres == nil {
		return nil, errors.New("postgres configuration is missing")
	}
	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return nil, err
	}

	userRepo := postgres.NewUserRepository(db)
	courseRepo := postgres.NewCourseRepository(db)
	txManager := postgres.NewTransactionManager(db)

	return &app{
		cfg:    cfg,
		logger: logger,
		db:     db,
		accountUC: impl.NewAccountService(impl.AccountServiceParams{
			TxManager:  txManager,
			UserRepo:   userRepo,
			CourseRepo: courseRepo,
			BlogRepo:   postgres.NewBlogRepository(db),
			Hasher:     auth.NewBcryptHasher(cfg),
			Logger:     logger,
		}),
		purchaseUC: impl.NewPurchaseService(impl.PurchaseServiceParams{
			TxManager:     txManager,
			UserRepo:      userRepo,
			CourseRepo:    courseRepo,
			PurchaseRepo:  postgres.NewPurchaseRepository(db),
			InvoiceNumber: invoice.NewGenerator(),
			QRCode:        qrcode.NewQRCodeService(cfg),
			Config:        cfg,
			Logger:        logger,
		}),
	}, nil
}

func (a *app) close() {
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// withApp opens the database around fn.
func withApp(fn func(ctx context.Context, a *app, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		return fn(cmd.Context(), a, args)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "academyctl",
		Short: "Maintenance commands for the academy backend",
		Long: `academyctl manages the academy database outside the HTTP server.

The configuration file is chosen by APP_ENV, exactly as for the server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newMigrateCmd(),
		newCreateAdminCmd(),
		newPromoteCmd(),
		newListUsersCmd(),
		newReconcileCmd(),
	)

	return rootCmd
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update tables and indexes",
		Args:  cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, a *app, _ []string) error {
			start := time.Now()
			if err := postgres.Migrate(ctx, a.db); err != nil {
				return err
			}
			printSuccess("Schema is up to date (%s)", util.FormatDuration(time.Since(start)))

			return nil
		}),
	}
}

func newCreateAdminCmd() *cobra.Command {
	var username, email, password string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create the admin account, or promote it when the email exists",
		Long: `Create the admin account from flags, falling back to the admin section
of the configuration. Running it again is harmless.`,
		Args: cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, a *app, _ []string) error {
			input := &usecase.CreateUserInput{Username: username, Email: email, Password: password}
			if admin := a.cfg.Admin; admin != nil {
				input.Username = firstNonEmpty(input.Username, admin.Username)
				input.Email = firstNonEmpty(input.Email, admin.Email)
				input.Password = firstNonEmpty(input.Password, admin.Password)
			}

			user, created, err := a.accountUC.EnsureAdmin(ctx, input)
			if err != nil {
				return err
			}
			if created {
				printSuccess("Created admin %s <%s> with id %d", user.Username, user.Email, user.ID)
			} else {
				printWarning("Admin %s <%s> already exists", user.Username, user.Email)
			}

			return nil
		}),
	}

	cmd.Flags().StringVar(&username, "username", "", "Admin username (default: admin.username)")
	cmd.Flags().StringVar(&email, "email", "", "Admin email (default: admin.email)")
	cmd.Flags().StringVar(&password, "password", "", "Admin password (default: admin.password)")

	return cmd
}

func newPromoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "promote <email>",
		Short: "Grant the admin role to an existing account",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(ctx context.Context, a *app, args []string) error {
			user, err := a.accountUC.PromoteToAdmin(ctx, args[0])
			if err != nil {
				return err
			}
			printSuccess("%s <%s> is now an admin", user.Username, user.Email)

			return nil
		}),
	}
}

func newListUsersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-users",
		Short: "Print every account",
		Args:  cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, a *app, _ []string) error {
			users, err := a.accountUC.ListUsers(ctx)
			if err != nil {
				return err
			}
			if len(users) == 0 {
				printMuted("No users")

				return nil
			}

			rows := make([][]string, 0, len(users))
			for _, u := range users {
				rows = append(rows, []string{
					strconv.FormatUint(uint64(u.ID), 10),
					u.Username,
					u.Email,
					u.Role.String(),
					formatIDs(u.OwnedCourses),
				})
			}
			fmt.Print(renderTable([]string{"ID", "USERNAME", "EMAIL", "ROLE", "OWNED"}, rows))

			return nil
		}),
	}
}

func newReconcileCmd() *cobra.Command {
	var userID uint

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Rebuild owned courses from the purchase ledger",
		Args:  cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, a *app, _ []string) error {
			var users []*entity.User
			if userID != 0 {
				users = []*entity.User{{ID: userID}}
			} else {
				var err error
				if users, err = a.accountUC.ListUsers(ctx); err != nil {
					return err
				}
			}

			start := time.Now()
			changed := 0
			for _, u := range users {
				out, err := a.purchaseUC.ReconcileOwnedCourses(ctx, u.ID)
				if err != nil {
					return errors.Wrapf(err, "reconcile user %d", u.ID)
				}
				if !out.Changed {
					continue
				}
				changed++
				printWarning("User %d: %s -> %s", out.UserID, formatIDs(out.Before), formatIDs(out.After))
			}
			printSuccess("Reconciled %d user(s), %d changed (%s)", len(users), changed, util.FormatDuration(time.Since(start)))

			return nil
		}),
	}

	cmd.Flags().UintVar(&userID, "user", 0, "Only reconcile this user id")

	return cmd
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}

	return ""
}

func formatIDs(ids []uint) string {
	if len(ids) == 0 {
		return "-"
	}

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}

	return strings.Join(parts, ",")
}
