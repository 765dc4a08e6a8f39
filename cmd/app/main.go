package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"

	"laundry/cmd"
	"laundry/internal/adapters/in/cli"
	"laundry/internal/adapters/out/postgres"
	"laundry/internal/seed"

	"github.com/joho/godotenv"
	"github.com/juju/clock"
	"github.com/juju/gnuflag"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const usage = `usage: laundry [--env FILE] [--verbose] [menu|seed|dump]

  menu  interactive management menus (default)
  seed  load sample data into an empty database
  dump  print every stored record
`

func main() {
	flags := gnuflag.NewFlagSet("laundry", gnuflag.ExitOnError)
	envFile := flags.String("env", ".env", "read settings from this dotenv file when it exists")
	verbose := flags.Bool("verbose", false, "log every SQL statement")
	flags.Usage = func() {
		_, _ = fmt.Fprint(os.Stderr, usage)
		flags.PrintDefaults()
	}
	_ = flags.Parse(true, os.Args[1:])

	mode := "menu"
	if flags.NArg() > 0 {
		mode = flags.Arg(0)
	}

	configs := getConfigs(*envFile)
	slogger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: configs.SlogLevel()}))

	gormDB := mustOpenDatabase(configs, *verbose)
	app := cmd.NewCompositionRoot(configs, gormDB, clock.WallClock, slogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch mode {
	case "menu":
		err = runMenu(ctx, app, slogger)
	case "seed":
		err = runSeed(ctx, app, configs.SeedFile)
	case "dump":
		err = cli.NewApp(app.CLIHandlers(), nil, os.Stdout, clock.WallClock, slogger).Dump(ctx)
	default:
		flags.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("laundry %s: %v", mode, err)
	}
}

func getConfigs(envFile string) cmd.Config {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading %s file: %v", envFile, err)
	}

	config := cmd.Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSslMode:  os.Getenv("DB_SSLMODE"),
		LogLevel:   os.Getenv("LOG_LEVEL"),
		SeedFile:   os.Getenv("SEED_FILE"),
	}
	return config.WithDefaults()
}

func mustOpenDatabase(configs cmd.Config, verbose bool) *gorm.DB {
	logLevel := logger.Silent
	if verbose {
		logLevel = logger.Info
	}

	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("%v", err)
	}
	return gormDB
}

func runMenu(ctx context.Context, app cmd.CompositionRoot, slogger *slog.Logger) error {
	prompter, err := cli.NewReadlinePrompter(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer func() { _ = prompter.Close() }()

	return cli.NewApp(app.CLIHandlers(), prompter, os.Stdout, clock.WallClock, slogger).Run(ctx)
}

func runSeed(ctx context.Context, app cmd.CompositionRoot, path string) error {
	f, err := seed.Load(path)
	if err != nil {
		return err
	}

	applied, err := app.Seeder().Apply(ctx, f)
	if err != nil {
		return err
	}
	if !applied {
		fmt.Println("Database already has data; nothing seeded.")
		return nil
	}
	fmt.Println("Sample data loaded.")
	return nil
}
