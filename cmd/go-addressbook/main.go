package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/tartampluch/go-addressbook/internal/book"
	"github.com/tartampluch/go-addressbook/internal/command"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// main is the application entry point.
// It delegates execution to runMain so that deferred calls (like closing the
// log file) run before the process terminates.
func main() {
	os.Exit(runMain())
}

// runMain manages the application lifecycle, argument parsing, and exit codes.
func runMain() int {
	// -------------------------------------------------------------------------
	// 1. CLI Argument Parsing & Settings
	// -------------------------------------------------------------------------
	showVersion := flag.Bool(config.FlagVersion, false, config.FlagDescVersion)
	debugMode := flag.Bool(config.FlagDebug, false, config.FlagDescDebug)
	lang := flag.String(config.FlagLang, config.DefaultLanguage, config.FlagDescLang)
	window := flag.Int(config.FlagWindow, config.DefaultBirthdayWindow, config.FlagDescWindow)
	reminder := flag.String(config.FlagReminder, "", config.FlagDescReminder)
	flag.Parse()

	if *showVersion {
		printVersion(os.Stdout)
		return config.ExitCodeSuccess
	}

	settings, err := config.LoadSettings(config.EnvFileName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return config.ExitCodeError
	}

	// Flags given explicitly win over the environment.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case config.FlagDebug:
			settings.Debug = *debugMode
		case config.FlagLang:
			settings.Language = *lang
		case config.FlagWindow:
			settings.BirthdayWindow = *window
		case config.FlagReminder:
			settings.ReminderTrigger = *reminder
		}
	})
	if err := settings.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return config.ExitCodeError
	}

	// -------------------------------------------------------------------------
	// 2. Logging Initialization
	// -------------------------------------------------------------------------
	logCloser := setupLogging(settings.Debug)
	if logCloser != nil {
		defer func() {
			_ = logCloser.Close() // Best effort close
		}()
	}

	// -------------------------------------------------------------------------
	// 3. Context & Signal Handling
	// -------------------------------------------------------------------------
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logStartupInfo(settings)

	// -------------------------------------------------------------------------
	// 4. Application Logic
	// -------------------------------------------------------------------------
	if err := run(ctx, os.Stdin, os.Stdout, settings); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// run wires the dispatcher and the directory, then reads commands from in
// until exit, end of input or cancellation of ctx.
func run(ctx context.Context, in io.Reader, out io.Writer, s config.Settings) error {
	bundle, _, err := command.LoadBundle()
	if err != nil {
		return err
	}
	d := command.NewDispatcher(command.NewLocalizer(bundle, s.Language), book.RealClock{}, s.BirthdayWindow)
	d.Reminder = s.ReminderTrigger
	dir := book.NewDirectory()

	// Stops the reader goroutine once the loop returns.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- nil
				return
			}
		}
		readErr <- scanner.Err()
	}()

	fmt.Fprintln(out, d.Welcome())
	for {
		fmt.Fprint(out, config.PromptInput)

		select {
		case <-ctx.Done():
			slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompMain)
			fmt.Fprintln(out)
			return nil
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(out)
				if err := <-readErr; err != nil {
					return fmt.Errorf("%s: %w", config.ErrReadInput, err)
				}
				return nil
			}

			cmd, args := command.Parse(line)
			fmt.Fprintln(out, d.Dispatch(cmd, args, dir))
			if d.IsExit(cmd) {
				return nil
			}
		}
	}
}

// printVersion outputs the build information.
func printVersion(w io.Writer) {
	fmt.Fprintf(w, config.MsgVersionOutput,
		config.AppName,
		config.Version,
		config.Commit,
		config.Date,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo(s config.Settings) {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		config.LogKeyLang, s.Language,
		config.LogKeyWindow, s.BirthdayWindow,
		config.LogKeyReminder, s.ReminderTrigger,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging configures the default slog logger. Stdout belongs to the
// command loop, so logs go to a file and, in debug mode, to stderr.
func setupLogging(debugMode bool) io.Closer {
	var writers []io.Writer
	var logFile *os.File

	if debugMode {
		writers = append(writers, os.Stderr)
	}

	if logPath, err := getLogFilePath(); err == nil {
		// O_TRUNC resets logs on restart to prevent indefinite growth.
		f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
		if err == nil {
			writers = append(writers, f)
			logFile = f
		} else {
			fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, logPath, err)
		}
	}

	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}

	logger := slog.New(slog.NewJSONHandler(io.MultiWriter(writers...), opts))
	slog.SetDefault(logger)

	if logFile == nil {
		return nil
	}
	return logFile
}

// getLogFilePath determines the platform-specific cache directory for logs.
func getLogFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, config.AppID)
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return filepath.Join(appDir, config.LogFileName), nil
}
