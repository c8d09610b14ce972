package storage

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// LogLevel 定义日志级别类型
type LogLevel int

// 日志级别常量定义
const (
	DEBUG   LogLevel = iota // 调试信息
	INFO                    // 普通信息
	WARNING                 // 警告信息
	ERROR                   // 错误信息
	FATAL                   // 致命错误
)

// Logger 日志记录器结构体
type Logger struct {
	out   io.Writer  // 日志输出
	file  *os.File   // 日志文件句柄, 非文件输出时为nil
	level LogLevel   // 最低输出级别
	mu    sync.Mutex // 互斥锁，保证并发安全
	now   func() time.Time
}

// NewLogger 创建写入文件的日志记录器
// 参数:
//
//	filename: 日志文件路径
//
// 返回值:
//
//	*Logger: 日志记录器实例
//	error: 创建过程中的错误
func NewLogger(filename string) (*Logger, error) {
	// 打开或创建日志文件，权限设置为0644
	file, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("打开日志文件失败: %w", err)
	}

	l := NewWriterLogger(file)
	l.file = file
	return l, nil
}

// NewWriterLogger 创建写入任意io.Writer的日志记录器
func NewWriterLogger(w io.Writer) *Logger {
	return &Logger{
		out:   w,
		level: DEBUG,
		now:   time.Now,
	}
}

// Discard 丢弃所有输出
func Discard() *Logger {
	return NewWriterLogger(io.Discard)
}

// SetLevel 设置最低输出级别
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// Close 关闭日志文件
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		l.out = io.Discard
		return err
	}
	return nil
}

// Log 记录日志方法
// 参数:
//
//	level: 日志级别
//	message: 日志消息内容
func (l *Logger) Log(level LogLevel, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	// 格式化日志条目: [时间] 级别: 消息
	entry := fmt.Sprintf("[%s] %s: %s\n",
		l.now().Format("2006-01-02 15:04:05"),
		level.String(),
		message)

	_, _ = io.WriteString(l.out, entry)
}

// String 实现LogLevel的String方法
func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARNING:
		return "WARNING"
	case ERROR:
		return "ERROR"
	case FATAL:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// 以下是快捷日志方法
func (l *Logger) Debug(msg string)   { l.Log(DEBUG, msg) }   // 记录调试信息
func (l *Logger) Info(msg string)    { l.Log(INFO, msg) }    // 记录普通信息
func (l *Logger) Warning(msg string) { l.Log(WARNING, msg) } // 记录警告信息
func (l *Logger) Error(msg string)   { l.Log(ERROR, msg) }   // 记录错误信息
func (l *Logger) Fatal(msg string)   { l.Log(FATAL, msg) }   // 记录致命错误

// Infof 格式化版本
func (l *Logger) Infof(format string, args ...any) { l.Log(INFO, fmt.Sprintf(format, args...)) }

func (l *Logger) Errorf(format string, args ...any) { l.Log(ERROR, fmt.Sprintf(format, args...)) }
