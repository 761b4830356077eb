// Package cmd implements the pickersim commands.
//
// A root command dispatches to subcommands (convert, options, simulate, tui).
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/go-drift/picker/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// stdout receives command output. Tests swap it for a buffer.
var stdout io.Writer = os.Stdout

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "pickersim",
	Short: "pickersim - scroll-wheel date picker simulator",
	Long: `pickersim drives the scroll-wheel date picker outside a UI toolkit.
It converts between solar and lunar dates, lists column options, replays
scripted gestures and runs an interactive terminal picker.

Settings are read from picker.yaml in the project root when present.

Use "pickersim <command> --help" for more information about a command.`,
	Usage: "pickersim <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the given arguments.
func Execute(args []string) error {
	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	var filteredArgs []string
	for _, arg := range args {
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version", "version":
			if len(filteredArgs) == 0 {
				fmt.Fprintf(stdout, "pickersim version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--verbose":
			errors.SetHandler(&errors.LogHandler{Verbose: true})
		default:
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs)
}

func printHelp(cmd *Command) {
	w := stdout
	fmt.Fprintln(w, cmd.Long)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", cmd.Usage)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Fprintf(w, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -h, --help           Show help for a command")
	fmt.Fprintln(w, "  -v, --version        Show version information")
	fmt.Fprintln(w, "  --verbose            Log picker errors with stack traces")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  pickersim convert 2024-02-10          Solar to lunar")
	fmt.Fprintln(w, "  pickersim options --lunar --date 2020-05-23")
	fmt.Fprintln(w, "  pickersim simulate day:fling:-300     Fling the day column")
	fmt.Fprintln(w, "  pickersim tui                         Interactive picker")
}

func printCommandHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
}
