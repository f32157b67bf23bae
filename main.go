package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Scan scope
	includeDotfiles  bool
	includeOverrides []string
	scanHere         bool
	noIgnore         bool
	maxDepth         int
	numThreads       int

	// Modes
	findLanguage string
	findRootOnly bool
	excludeLangs []string

	// Output
	outputFormat    string
	outputFile      string
	copyToClipboard bool
	pdfOutputFile   string
	quiet           bool

	// Token counting
	countTokens    bool
	tokenizerType  string
	tokenizerModel string
	tokenizerFile  string

	// Interactive mode
	interactiveMode bool
)

// version is set via ldflags.
var version string = "dev"

var rootCmd = &cobra.Command{
	Use:   "lingo [DIRECTORY]",
	Short: "Lingo summarizes a codebase's language composition.",
	Long: `Lingo scans a directory tree, classifies files by extension, and reports
per-language file, byte, and line counts. It can also list every file of a
given language, and works on local directories and remote git repositories.`,
	Version:       version,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		target := "."
		if len(args) == 1 {
			target = args[0]
		}

		if interactiveMode {
			picked, err := runInteractivePicker()
			if err != nil {
				return fmt.Errorf("interactive mode: %w", err)
			}
			if picked == "" {
				return nil // user aborted
			}
			target = picked
		}

		// A git URL is cloned into a temp dir and scanned there; root
		// discovery makes no sense for a fresh clone.
		var tempDirToClean string
		defer func() {
			if tempDirToClean != "" {
				_ = os.RemoveAll(tempDirToClean)
			}
		}()

		var root string
		if isGitURL(target) {
			tempDir, err := cloneGitRepo(target)
			if err != nil {
				return err
			}
			tempDirToClean = tempDir
			root = tempDir
		} else {
			absTarget, err := filepath.Abs(target)
			if err != nil {
				absTarget = target
			}
			root = absTarget
			if !scanHere {
				if projectRoot := findProjectRoot(absTarget); projectRoot != "" {
					root = projectRoot
				}
			}
		}

		if findRootOnly {
			fmt.Fprintln(cmd.OutOrStdout(), root)
			return nil
		}

		cfg := ScanConfig{
			IncludeDotfiles:  includeDotfiles,
			IncludeOverrides: toNameSet(includeOverrides, false),
			ExcludeLanguages: toNameSet(excludeLangs, true),
			MaxDepth:         maxDepth,
			UseGitignore:     !noIgnore,
			Threads:          numThreads,
		}

		outcome, err := scanTree(root, cfg)
		if err != nil {
			return err
		}

		if !quiet {
			for _, diag := range outcome.Diagnostics {
				fmt.Fprintf(os.Stderr, "Warning: skipped %s: %v\n", diag.Path, diag.Err)
			}
		}

		if findLanguage != "" {
			paths := findFiles(outcome.Records, findLanguage, cfg)
			fmt.Fprint(cmd.OutOrStdout(), renderPaths(paths))
			return nil
		}

		report := aggregate(outcome.Records, cfg)

		if countTokens {
			tokenizer, err := getTokenizer()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: token counting disabled: %v\n", err)
			} else {
				defer tokenizer.Close()
				totals := tokenTotals(outcome.Records, tokenizer, numThreads)
				for i := range report.Languages {
					report.Languages[i].Tokens = totals[report.Languages[i].Name]
				}
			}
		}

		if pdfOutputFile != "" {
			return generatePDF(report, pdfOutputFile)
		}

		rendered, err := renderReport(report, outputFormat)
		if err != nil {
			return err
		}

		if outputFile != "" {
			if err := os.WriteFile(outputFile, []byte(rendered), 0644); err != nil {
				return fmt.Errorf("writing report to %s: %w", outputFile, err)
			}
			return nil
		}
		if copyToClipboard {
			if err := clipboard.WriteAll(rendered); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: clipboard write failed: %v\n", err)
				fmt.Fprint(cmd.OutOrStdout(), rendered)
			}
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Scan scope
	rootCmd.Flags().BoolVarP(&includeDotfiles, "include-dotfiles", "d", false, "Include files and directories that begin with a dot")
	viper.BindPFlag("include_dotfiles", rootCmd.Flags().Lookup("include-dotfiles"))
	rootCmd.Flags().StringSliceVarP(&includeOverrides, "include", "i", nil, "Entry names to include that are ignored by default (e.g. .git, node_modules)")
	viper.BindPFlag("include", rootCmd.Flags().Lookup("include"))
	rootCmd.Flags().BoolVarP(&scanHere, "here", "r", false, "Scan the given directory literally instead of searching for a project root")
	viper.BindPFlag("here", rootCmd.Flags().Lookup("here"))
	rootCmd.Flags().BoolVar(&noIgnore, "no-ignore", false, "Don't respect the root .gitignore file")
	viper.BindPFlag("no_ignore", rootCmd.Flags().Lookup("no-ignore"))
	rootCmd.Flags().IntVar(&maxDepth, "max-depth", 0, "Maximum directory depth to traverse (0 for no limit)")
	viper.BindPFlag("max_depth", rootCmd.Flags().Lookup("max-depth"))
	rootCmd.Flags().IntVarP(&numThreads, "threads", "t", 0, "Number of threads for parallel classification (0 for auto)")
	viper.BindPFlag("threads", rootCmd.Flags().Lookup("threads"))

	// Modes
	rootCmd.Flags().StringVarP(&findLanguage, "find", "f", "", "List all files of the specified language, one absolute path per line")
	rootCmd.Flags().BoolVar(&findRootOnly, "find-root", false, "Print the detected project root and exit")
	rootCmd.Flags().StringSliceVarP(&excludeLangs, "exclude", "e", nil, "Languages to exclude from the statistics (case-insensitive)")
	viper.BindPFlag("exclude", rootCmd.Flags().Lookup("exclude"))

	// Output
	rootCmd.Flags().StringVarP(&outputFormat, "output", "o", "human", "Output format: human, json, or yaml")
	viper.BindPFlag("output", rootCmd.Flags().Lookup("output"))
	rootCmd.Flags().StringVar(&outputFile, "file", "", "Save the report to the specified file")
	viper.BindPFlag("file", rootCmd.Flags().Lookup("file"))
	rootCmd.Flags().BoolVarP(&copyToClipboard, "clipboard", "c", false, "Copy the report to the clipboard")
	viper.BindPFlag("clipboard", rootCmd.Flags().Lookup("clipboard"))
	rootCmd.Flags().StringVar(&pdfOutputFile, "pdf", "", "Save the report as a PDF table")
	viper.BindPFlag("pdf", rootCmd.Flags().Lookup("pdf"))
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress per-file warnings")
	viper.BindPFlag("quiet", rootCmd.Flags().Lookup("quiet"))

	// Token counting
	rootCmd.Flags().BoolVar(&countTokens, "tokens", false, "Add per-language token totals to the report")
	viper.BindPFlag("tokens", rootCmd.Flags().Lookup("tokens"))
	rootCmd.Flags().StringVar(&tokenizerType, "tokenizer", "tiktoken", "Tokenizer to use: tiktoken or huggingface")
	viper.BindPFlag("tokenizer", rootCmd.Flags().Lookup("tokenizer"))
	rootCmd.Flags().StringVar(&tokenizerModel, "model", "", "Model name for the tokenizer (e.g. gpt-4o, gpt2)")
	viper.BindPFlag("model", rootCmd.Flags().Lookup("model"))
	rootCmd.Flags().StringVar(&tokenizerFile, "tokenizer-file", "", "Path to a local tokenizer file")
	viper.BindPFlag("tokenizer_file", rootCmd.Flags().Lookup("tokenizer-file"))

	// Interactive mode
	rootCmd.Flags().BoolVar(&interactiveMode, "interactive", false, "Pick the directory to scan with a fuzzy finder")
	viper.BindPFlag("interactive", rootCmd.Flags().Lookup("interactive"))

	viper.SetDefault("output", "human")
	viper.SetDefault("tokenizer", "tiktoken")
	viper.SetDefault("max_depth", 0)
	viper.SetDefault("threads", 0)
}

// initConfig reads the config file and LINGO_* environment variables.
func initConfig() {
	home, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "lingo"))
	}
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	viper.AutomaticEnv()
	viper.SetEnvPrefix("LINGO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
		}
	}

	// Flags bind one way, so config/env values only take effect for flags
	// the user didn't pass explicitly.
	syncFlagsFromConfig()
}

// syncFlagsFromConfig copies every bound viper key back into its flag
// variable unless the flag was passed on the command line, giving the
// flag > env > config > default precedence.
func syncFlagsFromConfig() {
	flags := rootCmd.Flags()

	if !flags.Changed("include-dotfiles") {
		includeDotfiles = viper.GetBool("include_dotfiles")
	}
	if !flags.Changed("include") {
		if v := viper.GetStringSlice("include"); len(v) > 0 {
			includeOverrides = v
		}
	}
	if !flags.Changed("here") {
		scanHere = viper.GetBool("here")
	}
	if !flags.Changed("no-ignore") {
		noIgnore = viper.GetBool("no_ignore")
	}
	if !flags.Changed("max-depth") {
		maxDepth = viper.GetInt("max_depth")
	}
	if !flags.Changed("threads") {
		numThreads = viper.GetInt("threads")
	}
	if !flags.Changed("exclude") {
		if v := viper.GetStringSlice("exclude"); len(v) > 0 {
			excludeLangs = v
		}
	}
	if !flags.Changed("output") {
		if v := viper.GetString("output"); v != "" {
			outputFormat = v
		}
	}
	if !flags.Changed("file") {
		if v := viper.GetString("file"); v != "" {
			outputFile = v
		}
	}
	if !flags.Changed("clipboard") {
		copyToClipboard = viper.GetBool("clipboard")
	}
	if !flags.Changed("pdf") {
		if v := viper.GetString("pdf"); v != "" {
			pdfOutputFile = v
		}
	}
	if !flags.Changed("quiet") {
		quiet = viper.GetBool("quiet")
	}
	if !flags.Changed("tokens") {
		countTokens = viper.GetBool("tokens")
	}
	if !flags.Changed("tokenizer") {
		if v := viper.GetString("tokenizer"); v != "" {
			tokenizerType = v
		}
	}
	if !flags.Changed("model") {
		if v := viper.GetString("model"); v != "" {
			tokenizerModel = v
		}
	}
	if !flags.Changed("tokenizer-file") {
		if v := viper.GetString("tokenizer_file"); v != "" {
			tokenizerFile = v
		}
	}
	if !flags.Changed("interactive") {
		interactiveMode = viper.GetBool("interactive")
	}
}

// toNameSet turns a repeatable flag value into a lookup set, optionally
// lowercasing for case-insensitive matching.
func toNameSet(values []string, lower bool) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		if lower {
			v = strings.ToLower(v)
		}
		set[v] = true
	}
	return set
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
