package database

import "time"

// Record 一次转换的记录，ErrKind 为空表示转换成功
type Record struct {
	ID        int64
	Input     string
	Output    string
	ErrKind   string
	CreatedAt time.Time
}

// ConversionStore 定义转换历史存储接口
type ConversionStore interface {
	AddConversion(rec Record) error                // 保存一次转换记录
	RecentConversions(limit int) ([]Record, error) // 按时间倒序返回最近的转换记录
	Close() error                                  // 关闭数据库连接
}
