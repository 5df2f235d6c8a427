package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"todo-api/internal/api"
	"todo-api/internal/auth"
	"todo-api/internal/config"
	"todo-api/internal/repository/sqlite"
	"todo-api/internal/services"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(cfg *config.Config) *RootCommand {
	root := &RootCommand{
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "todoapi",
		Short: "A REST API for managing per-user task lists",
		Long: `Todo API is a REST backend for managing per-user task lists with JWT authentication.

ENDPOINTS:
  POST   /api/auth/register                # Register a new user
  POST   /api/auth/login                   # Log in and receive a bearer token
  GET    /api/todos                        # List the authenticated user's tasks
  POST   /api/todos                        # Create a task
  GET    /api/todos/{id}                   # Fetch a single task
  PUT    /api/todos/{id}                   # Update a task
  DELETE /api/todos/{id}                   # Delete a task
  GET    /health                           # Liveness probe
  GET    /api-docs                         # OpenAPI document

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  Server Configuration:
    PORT                                   HTTP listen port (default: 3000)
    GIN_MODE                               Gin mode: debug, release, test (default: debug)
    CORS_ALLOWED_ORIGINS                   Comma-separated origins or * (default: *)

  Database Configuration:
    DB_PATH                                SQLite database path (default: todo.db)
    DB_QUERY_TIMEOUT                       Query timeout (default: 10s)
    DB_WRITE_TIMEOUT                       Write timeout (default: 5s)

  Auth Configuration:
    JWT_SECRET                             HMAC signing secret (required)
    TOKEN_LIFETIME                         Token validity window (default: 1h)
    BCRYPT_COST                            Password hashing cost (default: 10)

  Variables may also be placed in a .env file in the working directory.

GETTING HELP:
  todoapi [command] --help                 # Get help for any specific command`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Apply configuration overrides from flags before any command runs
			return root.getConfigFromFlags()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Running without a subcommand starts the server
			return root.runServe()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("port", "", "HTTP listen port (overrides PORT)")
	flags.String("db-path", "", "SQLite database path (overrides DB_PATH)")
	flags.Duration("token-lifetime", 0, "Token validity window (overrides TOKEN_LIFETIME)")
	flags.Int("bcrypt-cost", 0, "Password hashing cost (overrides BCRYPT_COST)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	r.cmd.AddCommand(r.newServeCommand())
	r.cmd.AddCommand(r.newMigrateCommand())
}

// getConfigFromFlags applies flag overrides on top of the loaded configuration.
func (r *RootCommand) getConfigFromFlags() error {
	flags := r.cmd.PersistentFlags()

	if port, err := flags.GetString("port"); err == nil && port != "" {
		r.config.Server.Port = port
	}
	if dbPath, err := flags.GetString("db-path"); err == nil && dbPath != "" {
		r.config.Database.Path = dbPath
	}
	if lifetime, err := flags.GetDuration("token-lifetime"); err == nil && lifetime > 0 {
		r.config.Auth.TokenLifetime = lifetime
	}
	if cost, err := flags.GetInt("bcrypt-cost"); err == nil && cost > 0 {
		r.config.Auth.BcryptCost = cost
	}

	return r.config.Validate()
}

func (r *RootCommand) newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runServe()
		},
	}
}

func (r *RootCommand) newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Opening the repository applies any pending migrations.
			repo, err := sqlite.New(r.config.Database.Path)
			if err != nil {
				return fmt.Errorf("failed to migrate database: %w", err)
			}
			defer repo.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "database %s is up to date\n", r.config.Database.Path)
			return nil
		},
	}
}

// runServe wires the repository, services and router, then blocks serving HTTP.
func (r *RootCommand) runServe() error {
	repo, err := sqlite.New(r.config.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer repo.Close()

	tokens, err := auth.NewTokenService(r.config.Auth.JWTSecret, r.config.Auth.TokenLifetime)
	if err != nil {
		return fmt.Errorf("failed to initialize token service: %w", err)
	}

	hasher := auth.NewPasswordHasher(r.config.Auth.BcryptCost)
	authService := services.NewAuthService(repo, hasher, tokens)
	todoService := services.NewTodoService(repo)

	router := api.NewRouter(r.config, authService, todoService, tokens)

	fmt.Printf("listening on :%s (%s mode)\n", r.config.Server.Port, r.config.Server.GinMode)
	return router.Run(":" + r.config.Server.Port)
}
