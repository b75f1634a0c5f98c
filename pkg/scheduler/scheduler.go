package scheduler

import (
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/yleoer/numeral/pkg/config"
	"github.com/yleoer/numeral/pkg/converter"
	"github.com/yleoer/numeral/pkg/database"
	"github.com/yleoer/numeral/pkg/numeral"
	"github.com/yleoer/numeral/pkg/util"
)

const (
	resultPrefix = "转换后的中文数字："
	errorPrefix  = "错误："
)

// Result 一行输入的转换结果
type Result struct {
	Input  string
	Output string
	Err    error
}

// TaskScheduler 负责调度输入文件的转换任务
type TaskScheduler struct {
	cfg               *config.Config
	dbStore           database.ConversionStore
	converter         converter.NumeralConverter
	logger            *log.Logger
	convertMutex      sync.Mutex // 保护转换过程
	pendingTasks      map[string]*time.Timer
	pendingTasksMutex sync.Mutex // 保护 pendingTasks map
}

// NewTaskScheduler 创建一个新的 TaskScheduler 实例
func NewTaskScheduler(
	cfg *config.Config,
	dbStore database.ConversionStore,
	numeralConverter converter.NumeralConverter,
	logger *log.Logger,
) *TaskScheduler {
	return &TaskScheduler{
		cfg:          cfg,
		dbStore:      dbStore,
		converter:    numeralConverter,
		logger:       logger,
		pendingTasks: make(map[string]*time.Timer),
	}
}

// InitialConvert 启动时对已存在的输入文件做一次转换
func (ts *TaskScheduler) InitialConvert() {
	if _, err := os.Stat(ts.cfg.InputFile); err != nil {
		ts.logger.Printf("Input file %s not present yet, waiting for input events.", ts.cfg.InputFile)
		return
	}
	ts.logger.Printf("Performing initial conversion of %s...", ts.cfg.InputFile)
	ts.performConvert(ts.cfg.InputFile)
}

// TriggerConvert 将一个输入事件加入延迟转换队列，短时间内的多次事件只转换一次
func (ts *TaskScheduler) TriggerConvert(path string) {
	ts.pendingTasksMutex.Lock()
	defer ts.pendingTasksMutex.Unlock()
	// 如果这个文件已经有一个待定的任务，就重置计时器
	if timer, ok := ts.pendingTasks[path]; ok {
		timer.Stop()
	}
	var timer *time.Timer
	timer = time.AfterFunc(ts.cfg.DebounceInterval, func() {
		ts.pendingTasksMutex.Lock()
		if ts.pendingTasks[path] == timer {
			delete(ts.pendingTasks, path)
		}
		ts.pendingTasksMutex.Unlock()
		ts.performConvert(path)
	})
	ts.pendingTasks[path] = timer
}

// performConvert 读取输入文件，逐行转换并写入输出文件
func (ts *TaskScheduler) performConvert(path string) {
	ts.convertMutex.Lock()
	defer ts.convertMutex.Unlock()

	content, err := util.ReadTextFileContent(path)
	if err != nil {
		if os.IsNotExist(err) {
			ts.logger.Printf("  -> Input file %s was removed. Ignoring.", path)
			return
		}
		ts.logger.Printf("ERROR: Error reading input file %s: %v", path, err)
		return
	}
	lines := util.NonEmptyLines(content)
	if len(lines) == 0 {
		ts.logger.Printf("  -> Input file %s is empty. Nothing to convert.", path)
		return
	}

	results := ts.ConvertLines(lines)
	if err := util.WriteFileAtomic(ts.cfg.OutputFile, FormatResults(results)); err != nil {
		ts.logger.Printf("ERROR: Error writing output file %s: %v", ts.cfg.OutputFile, err)
		return
	}
	ts.logger.Printf("Wrote %d result(s) to %s", len(results), ts.cfg.OutputFile)

	if ts.cfg.ResetOnError && hasFailure(results) {
		// 转换失败时清空输入，相当于重置输入框
		if err := os.Truncate(path, 0); err != nil {
			ts.logger.Printf("ERROR: Failed to reset input file %s: %v", path, err)
		} else {
			ts.logger.Printf("  -> Input file %s reset after failed conversion.", path)
		}
	}
}

// ConvertLines 逐行转换并记录到历史，单行失败不影响其他行
func (ts *TaskScheduler) ConvertLines(lines []string) []Result {
	results := make([]Result, 0, len(lines))
	for _, line := range lines {
		output, err := ts.converter.ToChinese(line)
		results = append(results, Result{Input: line, Output: output, Err: err})

		rec := database.Record{Input: line, Output: output}
		if err != nil {
			rec.ErrKind = numeral.KindOf(err).String()
		}
		if err := ts.dbStore.AddConversion(rec); err != nil {
			ts.logger.Printf("WARN: Conversion of %q not recorded: %v", line, err)
		}
	}
	return results
}

// FormatResults 将转换结果格式化为输出文件内容，每行对应一行输入
func FormatResults(results []Result) string {
	var b strings.Builder
	for _, r := range results {
		if r.Err != nil {
			b.WriteString(errorPrefix + r.Err.Error())
		} else {
			b.WriteString(resultPrefix + r.Output)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func hasFailure(results []Result) bool {
	for _, r := range results {
		if r.Err != nil {
			return true
		}
	}
	return false
}
