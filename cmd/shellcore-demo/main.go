package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/kir-gadjello/shellcore/cmdline"
)

// version is set at build time via -ldflags; it defaults to "dev" so a
// plain `go build` still produces a usable binary.
var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "shellcore-demo",
		Short: "Interactive demo shell built on the shellcore interpreter core",
		Args:  cobra.ArbitraryArgs,
		RunE:  runReplCmd,
	}

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive line editor over stdin/stdout",
		RunE:  runReplCmd,
	}
	rootCmd.AddCommand(replCmd)

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Browse a scratch session's command history in a TUI",
		RunE:  runHistoryCmd,
	}
	rootCmd.AddCommand(historyCmd)

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the shellcore-demo version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("shellcore-demo: %v", err)
	}
}

func runReplCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadPresetConfig()
	if err != nil {
		log.Fatalf("shellcore-demo: failed to load config: %v", err)
	}
	return runREPL(cfg)
}

// runHistoryCmd exercises the bubbletea history browser over a small
// seeded session, since this standalone invocation has no live REPL
// behind it to browse the history of.
func runHistoryCmd(cmd *cobra.Command, args []string) error {
	interp := cmdline.New(nil)
	for _, line := range []string{"help", "echo hello", "set PS1 demo>", "history"} {
		interp.Exe(line)
	}
	selected, err := runHistoryBrowser(interp)
	if err != nil {
		return err
	}
	if selected != nil {
		fmt.Fprintf(os.Stdout, "selected: %s\n", selected.Text)
	}
	return nil
}
