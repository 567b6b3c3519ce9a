package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"hall-booker/internal/config"
	"hall-booker/internal/logger"
	"hall-booker/internal/operations"
	"hall-booker/internal/router"
	"hall-booker/internal/tickets/qr"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := pflag.NewFlagSet("hall-booker", pflag.ContinueOnError)
	configPath := flags.String("config", "", "path to a YAML config file")
	dataFile := flags.String("file", "", "event file to open on startup")
	logDir := flags.String("log-dir", "", "directory for JSON log files")
	logLevel := flags.String("log-level", "", "minimum log level (debug, info, warn, error)")
	logConsole := flags.Bool("log-console", false, "also write log entries to stderr")
	qrDir := flags.String("qr-dir", "", "directory to write ticket QR codes to")
	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	envErr := godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if flags.Changed("file") {
		cfg.Data.File = *dataFile
	}
	if flags.Changed("log-dir") {
		cfg.Log.Dir = *logDir
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = *logLevel
	}
	if flags.Changed("log-console") {
		cfg.Log.Console = *logConsole
	}
	if flags.Changed("qr-dir") {
		cfg.Tickets.QRDir = *qrDir
	}

	opts := logger.Options{Dir: cfg.Log.Dir, Level: logger.ParseLevel(cfg.Log.Level)}
	if cfg.Log.Console {
		opts.Console = os.Stderr
	}
	log, err := logger.NewLogger(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer log.Close()

	if envErr != nil {
		log.Debug("CONFIG", ".env file not found, using environment variables")
	} else {
		log.Info("CONFIG", "Loaded environment variables from .env file")
	}
	log.Info("APP", fmt.Sprintf("Starting hall-booker session %s", log.Session()))

	input := router.NewLineScanner(os.Stdin)
	session := operations.NewSession(os.Stdout, input, log)
	session.UniqueCodes = cfg.Tickets.UniqueCodes
	session.QR = qr.NewQRGenerator(cfg.Tickets.QRSecret)
	session.QRDir = cfg.Tickets.QRDir
	if cfg.Tickets.QRSecret == "" {
		log.Warn("CONFIG", "QR_SECRET_KEY not set, ticket QR codes use an empty key")
	}

	r := router.New(session)
	log.Debug("APP", fmt.Sprintf("Halls: %s", strings.Join(session.Halls.Names(), ", ")))
	log.Debug("APP", fmt.Sprintf("Commands: %s", strings.Join(r.Commands(), ", ")))
	if cfg.Data.File != "" {
		log.Info("FILE", fmt.Sprintf("Opening %s on startup", cfg.Data.File))
		r.Dispatch("open " + cfg.Data.File)
	}

	prompt := ""
	if term.IsTerminal(int(os.Stdin.Fd())) {
		prompt = "> "
	}
	if err := r.Run(input, prompt); err != nil {
		log.Error("APP", fmt.Sprintf("Reading input failed: %v", err))
		return 1
	}
	log.Info("APP", "Session finished")
	return 0
}
