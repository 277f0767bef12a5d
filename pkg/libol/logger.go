package libol

import (
	"fmt"
	"log"
	"runtime/debug"
	"sync"
	"time"
)

const (
	DEBUG = 10
	INFO  = 20
	WARN  = 30
	ERROR = 40
)

var levels = map[int]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
}

type Message struct {
	Level   string `json:"level"`
	Date    string `json:"date"`
	Message string `json:"message"`
}

// maxMessages INFO and above are kept in memory for /api/log.
const maxMessages = 1024

type logger struct {
	lock  sync.Mutex
	level int
	file  string
	fp    *log.Logger
	ring  []Message
	next  int
	count int
}

func (l *logger) Write(level int, format string, v ...interface{}) {
	name, ok := levels[level]
	if !ok {
		name = "NULL"
	}
	m := fmt.Sprintf(format, v...)

	l.lock.Lock()
	defer l.lock.Unlock()
	if level >= l.level {
		log.Printf("%s|%s", name, m)
	}
	if level < INFO {
		return
	}
	if l.fp != nil {
		l.fp.Printf("%s|%s\n", name, m)
	}
	l.ring[l.next] = Message{
		Level:   name,
		Date:    time.Now().Format(time.RFC3339),
		Message: m,
	}
	l.next = (l.next + 1) % len(l.ring)
	if l.count < len(l.ring) {
		l.count++
	}
}

// List returns the kept messages newest first, the channel ends with nil.
func (l *logger) List() <-chan *Message {
	l.lock.Lock()
	items := make([]Message, 0, l.count)
	for i := 1; i <= l.count; i++ {
		items = append(items, l.ring[(l.next-i+len(l.ring))%len(l.ring)])
	}
	l.lock.Unlock()

	c := make(chan *Message, 128)
	go func() {
		for i := range items {
			c <- &items[i]
		}
		c <- nil
	}()
	return c
}

var Logger = &logger{
	level: INFO,
	ring:  make([]Message, maxMessages),
}

func SetLogger(file string, level int) {
	Logger.lock.Lock()
	defer Logger.lock.Unlock()
	Logger.level = level
	if file == "" || Logger.file == file {
		return
	}
	fp, err := OpenWrite(file)
	if err != nil {
		log.Printf("WARN|Logger.Init: %s", err)
		return
	}
	Logger.file = file
	Logger.fp = log.New(fp, "", log.LstdFlags)
}

func SetLevel(level int) {
	Logger.lock.Lock()
	defer Logger.lock.Unlock()
	Logger.level = level
}

func GetLevel() int {
	Logger.lock.Lock()
	defer Logger.lock.Unlock()
	return Logger.level
}

type SubLogger struct {
	*logger
	Prefix string
}

func NewSubLogger(prefix string) *SubLogger {
	return &SubLogger{
		logger: Logger,
		Prefix: prefix,
	}
}

func (s *SubLogger) Debug(format string, v ...interface{}) {
	s.Write(DEBUG, s.Prefix+"|"+format, v...)
}

func (s *SubLogger) Info(format string, v ...interface{}) {
	s.Write(INFO, s.Prefix+"|"+format, v...)
}

func (s *SubLogger) Warn(format string, v ...interface{}) {
	s.Write(WARN, s.Prefix+"|"+format, v...)
}

func (s *SubLogger) Error(format string, v ...interface{}) {
	s.Write(ERROR, s.Prefix+"|"+format, v...)
}

var rLogger = NewSubLogger("root")

func Debug(format string, v ...interface{}) {
	rLogger.Debug(format, v...)
}

func Info(format string, v ...interface{}) {
	rLogger.Info(format, v...)
}

func Warn(format string, v ...interface{}) {
	rLogger.Warn(format, v...)
}

func Error(format string, v ...interface{}) {
	rLogger.Error(format, v...)
}

// Catch logs a recovered panic with its stack, defer it in goroutines.
func Catch(name string) {
	if err := recover(); err != nil {
		Error("%s|PANIC >>> %s <<<", name, err)
		Error("%s|STACK >>> %s <<<", name, debug.Stack())
	}
}
