package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"fileshred/internal/config"
	"fileshred/internal/logging"
	"fileshred/internal/report"
	"fileshred/internal/walker"
)

const (
	Version = "4.1.0"
	AppName = "fileshred"

	// Exit codes
	EXIT_SUCCESS  = 0
	EXIT_ERROR    = 1
	EXIT_INFO     = 2
	EXIT_DECLINED = 3
)

var (
	// Информационные выходы и отказ от подтверждения различаются
	// кодом выхода процесса
	errInfoExit = errors.New("informational exit")
	errDeclined = errors.New("confirmation declined")
	errFatal    = errors.New("some files could not be shredded")

	helpRequested bool
)

var rootCmd = &cobra.Command{
	Use:                   "fileshred [OPTIONS] <file1> <file2> ...",
	Short:                 "Securely overwrite and remove files",
	SilenceUsage:          true,
	SilenceErrors:         true,
	DisableFlagsInUseLine: true,
	Args:                  cobra.ArbitraryArgs,
	RunE:                  runShred,
}

func init() {
	f := rootCmd.Flags()

	// Длинные опции нечувствительны к регистру, короткие — чувствительны
	f.SetNormalizeFunc(normalizeLong)

	f.BoolP("help", "h", false, "Show short usage")
	f.BoolP("full-help", "H", false, "Show full usage")
	f.BoolP("version", "V", false, "Show version")
	f.BoolP("copyright", "C", false, "Show copyright")

	f.IntP("overwrite-count", "n", 3, "Set number of overwrites")
	f.BoolP("recursive", "r", false, "Shred directories and their contents")
	f.BoolP("keep-files", "k", false, "Keep files after overwriting")
	f.BoolP("verbose", "v", false, "Enable verbose output")
	f.BoolP("follow-symlinks", "e", false, "Follow symlinks during shredding")
	f.BoolP("secure", "s", false, "Enable secure shredding with pattern passes")
	f.BoolP("dry", "d", false, "Show what would be shredded without processing")
	f.BoolP("no-verify", "c", false, "Skip post-shredding verification")
	f.BoolP("force", "f", false, "Attempt permission elevation when denied")
	f.Bool("internal", false, "Print diagnostics and ask for confirmation")

	f.String("config", "", "Path to configuration file")
	f.String("profile", "", "Shredding profile (quick/standard/paranoid)")

	// Короткая справка с кодом выхода 2 вместо стандартной cobra
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		printShortUsage()
		helpRequested = true
	})
}

func normalizeLong(f *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(toLowerASCII(name))
}

func toLowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

func runShred(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	if v, _ := flags.GetBool("full-help"); v {
		printFullUsage()
		return errInfoExit
	}
	if v, _ := flags.GetBool("version"); v {
		fmt.Printf("%s version %s\n", AppName, Version)
		return errInfoExit
	}
	if v, _ := flags.GetBool("copyright"); v {
		printCopyright()
		return errInfoExit
	}

	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Incorrect usage. Use '-h' for help")
		return errFatal
	}

	configPath, _ := flags.GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if profile, _ := flags.GetString("profile"); profile != "" {
		if err := config.ApplyProfile(cfg, profile); err != nil {
			return err
		}
	}

	opts := config.NewOptions(cfg)

	// Флаги командной строки имеют приоритет над файлом конфигурации
	if flags.Changed("overwrite-count") {
		opts.Passes, _ = flags.GetInt("overwrite-count")
	}
	if flags.Changed("secure") {
		opts.Secure, _ = flags.GetBool("secure")
	}
	if flags.Changed("no-verify") {
		noVerify, _ := flags.GetBool("no-verify")
		opts.Verify = !noVerify
	}
	opts.Recursive, _ = flags.GetBool("recursive")
	opts.Keep, _ = flags.GetBool("keep-files")
	opts.Verbose, _ = flags.GetBool("verbose")
	opts.FollowSymlinks, _ = flags.GetBool("follow-symlinks")
	opts.DryRun, _ = flags.GetBool("dry")
	opts.Force, _ = flags.GetBool("force")
	opts.Internal, _ = flags.GetBool("internal")

	if opts.Passes < 1 {
		fmt.Fprintln(os.Stderr, "ERROR: '-n' flag requires a positive integer")
		return errFatal
	}

	logger, err := logging.NewLogger(opts.Verbose, opts.Internal, cfg.Logging.File)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Close()

	if opts.Internal && !confirmRun(opts, args) {
		return errDeclined
	}

	startTime := time.Now()
	fmt.Printf("Beginning Shred at: %s\n", startTime.Format("15:04:05"))

	run := report.NewRun(Version, opts.DryRun)
	w := walker.New(opts, logger, run)

	for _, path := range args {
		w.Process(path)
	}

	run.Finish()
	duration := time.Since(startTime)

	if !opts.Recursive {
		logger.Logf(logging.INFO, "File shredding process completed. %f seconds.", duration.Seconds())
	} else {
		logger.Logf(logging.INFO, "Recursive shredding process completed. %f seconds.", duration.Seconds())
	}
	fmt.Printf("Shred completed at: %s\n", time.Now().Format("15:04:05"))

	if err := report.Save(run, cfg); err != nil {
		logger.Logf(logging.WARNING, "Failed to save run report: %v", err)
	}

	if run.Fatal() {
		return errFatal
	}
	return nil
}

func main() {
	rootCmd.SetArgs(expandArgs(os.Args[1:]))

	err := rootCmd.Execute()
	if helpRequested {
		os.Exit(EXIT_INFO)
	}

	switch {
	case err == nil:
		os.Exit(EXIT_SUCCESS)
	case errors.Is(err, errInfoExit):
		os.Exit(EXIT_INFO)
	case errors.Is(err, errDeclined):
		os.Exit(EXIT_DECLINED)
	case errors.Is(err, errFatal):
		os.Exit(EXIT_ERROR)
	default:
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(EXIT_ERROR)
	}
}
