package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/tokendrift/tokendrift"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run the comparison whenever the project document changes",
	Long: `Watch the project token document and re-run the comparison against
the reference on every change. Intended for interactive development;
exit codes are not applied.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return runWatch()
	},
}

func init() {
	f := watchCmd.Flags()
	f.String("project", "tokens/project.json", "Project token document")
	f.String("reference", "tokens/reference.json", "Reference token document")
	f.Float64("threshold", 0.0, "ΔE2000 similarity threshold (0 = default 5.0)")
	f.String("output-format", "", "Output format: issues|summary|full")
	f.Duration("debounce", 250*time.Millisecond, "Quiet period after a change before re-running")
}

func runWatch() error {
	config := buildCompareConfig()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors replace files on save,
	// which drops a file-level watch.
	dir := filepath.Dir(config.ProjectPath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	fmt.Printf("Watching %s (reference %s), ctrl-c to stop\n",
		config.ProjectPath, config.ReferencePath)
	watchCompare(config)

	debounce := k.Duration("debounce")
	if debounce <= 0 {
		debounce = 250 * time.Millisecond
	}

	var timer *time.Timer
	target, _ := filepath.Abs(config.ProjectPath)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			changed, _ := filepath.Abs(event.Name)
			if changed != target {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				watchCompare(config)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		}
	}
}

// watchCompare runs one comparison and prints it without exit-code gating.
func watchCompare(config tokendrift.CompareConfig) {
	result, err := tokendrift.Compare(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "compare failed: %v\n", err)
		return
	}

	outputFormat := getStringWithFallback("output-format", "compare.output-format", "full")
	format := tokendrift.DetermineOutputFormat(outputFormat, false)

	fmt.Printf("\n--- %s ---\n", time.Now().Format("15:04:05"))
	if err := tokendrift.WriteOutput(os.Stdout, result, format, buildReportOptions()); err != nil {
		fmt.Fprintf(os.Stderr, "write output: %v\n", err)
	}
}
