package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/yleoer/numeral/pkg/converter"
	"github.com/yleoer/numeral/pkg/database"
	"github.com/yleoer/numeral/pkg/scheduler"
	"github.com/yleoer/numeral/pkg/util"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Convert the input file every time it changes",
	Long: `Watch INPUT_FILE and write one result line per input line to OUTPUT_FILE
whenever the input file is written. Conversions are recorded in the history
database. With RESET_ON_ERROR=true the input file is cleared after a failure.`,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	logger.Println("Starting numeral watcher...")
	cfg := loadConfig()

	dbStore, err := database.NewSQLiteStore(cfg.DBPath, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer dbStore.Close()

	taskScheduler := scheduler.NewTaskScheduler(cfg, dbStore, converter.NewSignedConverter(logger), logger)
	taskScheduler.InitialConvert()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating file watcher: %w", err)
	}
	defer watcher.Close()
	// 监听所在目录，编辑器保存时常常是替换文件而不是原地写入
	inputDir := filepath.Dir(cfg.InputFile)
	if err := watcher.Add(inputDir); err != nil {
		return fmt.Errorf("error adding %s to watcher: %w", inputDir, err)
	}
	logger.Printf("Monitoring %s for changes...", cfg.InputFile)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isInputEvent(event, cfg.InputFile) {
				continue
			}
			logger.Printf("Watcher event: %s, on %s", event.Op.String(), event.Name)
			taskScheduler.TriggerConvert(cfg.InputFile)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Printf("ERROR: Watcher error: %v", err)
		case sig := <-stop:
			logger.Printf("Received %s, shutting down.", sig)
			return nil
		}
	}
}

// isInputEvent 只关注输入文件本身的创建和写入
func isInputEvent(event fsnotify.Event, inputFile string) bool {
	if filepath.Clean(event.Name) != filepath.Clean(inputFile) {
		return false
	}
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return false
	}
	return !util.IsDirectory(event.Name)
}
