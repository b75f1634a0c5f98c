package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// sqliteStore 是 ConversionStore 接口的 SQLite 实现
type sqliteStore struct {
	db     *sql.DB
	logger *log.Logger
}

const createTableSQL = `
	CREATE TABLE IF NOT EXISTS conversions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		input TEXT NOT NULL,
		output TEXT NOT NULL DEFAULT '',
		err_kind TEXT NOT NULL DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`

// NewSQLiteStore 初始化 SQLite 数据库并返回 ConversionStore 接口实例
func NewSQLiteStore(dataSourceName string, log *log.Logger) (ConversionStore, error) {
	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	// 尝试创建表，如果不存在
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close() // 创建表失败也要关闭连接
		return nil, fmt.Errorf("failed to create conversions table: %w", err)
	}
	log.Printf("SQLite database initialized at: %s", dataSourceName)
	return &sqliteStore{db: db, logger: log}, nil
}

// Close 关闭数据库连接
func (s *sqliteStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.logger.Println("SQLite database connection closed.")
		return err
	}
	return nil
}

// AddConversion 保存一次转换记录
func (s *sqliteStore) AddConversion(rec Record) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	_, err := s.db.Exec("INSERT INTO conversions (input, output, err_kind, created_at) VALUES (?, ?, ?, ?)",
		rec.Input, rec.Output, rec.ErrKind, rec.CreatedAt)
	if err != nil {
		s.logger.Printf("ERROR: Failed to record conversion of %q: %v", rec.Input, err)
		return fmt.Errorf("failed to add conversion %q: %w", rec.Input, err)
	}
	return nil
}

// RecentConversions 按时间倒序返回最近 limit 条转换记录
func (s *sqliteStore) RecentConversions(limit int) ([]Record, error) {
	rows, err := s.db.Query("SELECT id, input, output, err_kind, created_at FROM conversions ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		s.logger.Printf("ERROR: Failed to query recent conversions: %v", err)
		return nil, fmt.Errorf("failed to query recent conversions: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.Input, &rec.Output, &rec.ErrKind, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan conversion row: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
