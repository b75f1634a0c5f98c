package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/yleoer/numeral/pkg/converter"
	"github.com/yleoer/numeral/pkg/database"
	"github.com/yleoer/numeral/pkg/scheduler"
	"github.com/yleoer/numeral/pkg/util"
)

var convertCmd = &cobra.Command{
	Use:   "convert [number...]",
	Short: "Convert numbers given as arguments or on stdin",
	Long: `Convert each argument to a Chinese numeral and print "<input>\t<result>".

Without arguments, one number per line is read from stdin. Use "--" before
negative numbers so they are not parsed as flags: cnumeral convert -- -42`,
	RunE: runConvert,
}

var recordHistory bool

func init() {
	convertCmd.Flags().BoolVar(&recordHistory, "record", false, "Record conversions in the history database")
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputs := args
	if len(inputs) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text, err := util.DecodeText(data, "stdin")
		if err != nil {
			return err
		}
		inputs = util.NonEmptyLines(text)
	}

	numeralConverter := converter.NewSignedConverter(logger)
	var results []scheduler.Result
	if recordHistory {
		cfg := loadConfig()
		dbStore, err := database.NewSQLiteStore(cfg.DBPath, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer dbStore.Close()
		results = scheduler.NewTaskScheduler(cfg, dbStore, numeralConverter, logger).ConvertLines(inputs)
	} else {
		for _, input := range inputs {
			output, err := numeralConverter.ToChinese(input)
			results = append(results, scheduler.Result{Input: input, Output: output, Err: err})
		}
	}
	return printResults(cmd.OutOrStdout(), results)
}

// printResults 输出转换结果，有失败时返回错误以便以非零状态退出
func printResults(w io.Writer, results []scheduler.Result) error {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(w, "%s\t错误：%v\n", r.Input, r.Err)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", r.Input, r.Output)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d conversion(s) failed", failed, len(results))
	}
	return nil
}
