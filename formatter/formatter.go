package formatter

import (
	"bytes"
	"os"
	"sync"

	"github.com/dnlrv/scriptlog/core"
)

// Formatter defines the interface for syslog line formatters. The
// returned line carries no trailing newline; sinks add their own
// record separator.
type Formatter interface {
	// Format formats a record into bytes
	Format(rec *core.Record) ([]byte, error)
}

// Config holds common formatter configuration
type Config struct {
	// Hostname is rendered in the HOSTNAME field (default: the local
	// host's name, "-" when that cannot be resolved)
	Hostname string
	// StrictTimestamps renders RFC 5424 timestamps per the RFC
	// (24-hour clock, RFC 3339). The default reproduces the legacy
	// 12-hour rendering existing consumers of these logs expect.
	StrictTimestamps bool
}

// fillHostname resolves the default host name once, at construction
func (c *Config) fillHostname() {
	if c.Hostname != "" {
		return
	}
	h, err := os.Hostname()
	if err != nil || h == "" {
		c.Hostname = "-"
		return
	}
	c.Hostname = h
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
