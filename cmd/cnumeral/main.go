// Package main provides the CLI entry point for cnumeral.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/yleoer/numeral/pkg/config"
)

var logger = log.New(os.Stderr, "[Numeral] ", log.LstdFlags|log.Lshortfile)

var rootCmd = &cobra.Command{
	Use:   "cnumeral",
	Short: "Convert Arabic numbers to Chinese numerals",
	Long: `cnumeral converts integers of up to 16 digits into Chinese numerals,
for example 1001 => 一千零一 and -10000 => 负一万.

Numbers can be converted once from the command line, or continuously by
watching an input file and writing the results to an output file.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(historyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig 加载配置，失败时直接退出
func loadConfig() *config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}
	logger.Printf("Configuration loaded: InputFile=%s, OutputFile=%s, DBPath=%s",
		cfg.InputFile, cfg.OutputFile, cfg.DBPath)
	return cfg
}
