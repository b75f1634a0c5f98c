package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	InputFile        string        `json:"input_file"`        // 监听的输入文件，每行一个待转换的数字
	OutputFile       string        `json:"output_file"`       // 转换结果输出文件
	DataDir          string        `json:"data_dir"`          // SQLite数据库文件存放目录
	DBFileName       string        `json:"db_file_name"`      // SQLite数据库文件名
	DBPath           string        `json:"-"`                 // 完整的数据库文件路径
	DebounceInterval time.Duration `json:"debounce_interval"` // 输入事件合并的等待时间
	ResetOnError     bool          `json:"reset_on_error"`    // 转换失败时是否清空输入文件
	HistoryLimit     int           `json:"history_limit"`     // history 命令默认显示的条数
}

const (
	dataDir    = "/app/data"
	inputFile  = "input.txt"
	outputFile = "output.txt"
	dbFileName = "numeral.db"

	debounceInterval = 300 * time.Millisecond
	historyLimit     = 20
)

// LoadConfig 从环境变量或默认值加载配置
func LoadConfig() (*Config, error) {
	// 尝试加载 .env 文件
	_ = godotenv.Load()

	cfg := fromEnv()
	// 确认目录存在
	for _, dir := range []string{cfg.DataDir, filepath.Dir(cfg.InputFile), filepath.Dir(cfg.OutputFile)} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return cfg, nil
}

// fromEnv 读取环境变量并填充默认值，不触碰文件系统
func fromEnv() *Config {
	cfg := &Config{
		InputFile:        os.Getenv("INPUT_FILE"),
		OutputFile:       os.Getenv("OUTPUT_FILE"),
		DataDir:          os.Getenv("DATA_DIR"),
		DBFileName:       os.Getenv("DB_FILE_NAME"),
		DebounceInterval: parseDurationOrDefault(os.Getenv("DEBOUNCE_INTERVAL"), debounceInterval),
		ResetOnError:     parseBoolOrDefault(os.Getenv("RESET_ON_ERROR"), false),
		HistoryLimit:     parseIntOrDefault(os.Getenv("HISTORY_LIMIT"), historyLimit),
	}

	// 设置默认值
	if cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}
	if cfg.InputFile == "" {
		cfg.InputFile = filepath.Join(cfg.DataDir, inputFile)
	}
	if cfg.OutputFile == "" {
		cfg.OutputFile = filepath.Join(cfg.DataDir, outputFile)
	}
	if cfg.DBFileName == "" {
		cfg.DBFileName = dbFileName
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = historyLimit
	}
	cfg.DBPath = filepath.Join(cfg.DataDir, cfg.DBFileName)
	return cfg
}

func parseDurationOrDefault(s string, defaultValue time.Duration) time.Duration {
	if s == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		log.Printf("Warning: Could not parse duration '%s', using default '%v'. Error: %v", s, defaultValue, err)
		return defaultValue
	}
	return d
}

func parseBoolOrDefault(s string, defaultValue bool) bool {
	if s == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		log.Printf("Warning: Could not parse bool '%s', using default '%v'. Error: %v", s, defaultValue, err)
		return defaultValue
	}
	return b
}

func parseIntOrDefault(s string, defaultValue int) int {
	if s == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Printf("Warning: Could not parse int '%s', using default '%v'. Error: %v", s, defaultValue, err)
		return defaultValue
	}
	return n
}
