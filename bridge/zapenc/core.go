package zapenc

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/simplelog/formatter"
)

type ioCore struct {
	zapcore.LevelEnabler
	enc *Encoder
	out zapcore.WriteSyncer
}

// NewCore creates a zapcore.Core that writes every entry, whatever its
// level, through the encoder. Errors attached with Logger.With are kept
// in the extra values of every entry the derived logger writes.
func NewCore(f formatter.Formatter, ws zapcore.WriteSyncer) zapcore.Core {
	return &ioCore{
		LevelEnabler: zap.LevelEnablerFunc(func(zapcore.Level) bool { return true }),
		enc:          New(f),
		out:          ws,
	}
}

func (c *ioCore) With(fields []zapcore.Field) zapcore.Core {
	enc := c.enc.clone()
	enc.addContext(fields)
	return &ioCore{
		LevelEnabler: c.LevelEnabler,
		enc:          enc,
		out:          c.out,
	}
}

func (c *ioCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *ioCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	buf, err := c.enc.EncodeEntry(ent, fields)
	if err != nil {
		return err
	}
	_, err = c.out.Write(buf.Bytes())
	buf.Free()
	if err != nil {
		return err
	}
	if ent.Level > zapcore.ErrorLevel {
		// Panic and fatal entries may be the last thing the process writes.
		return c.Sync()
	}
	return nil
}

func (c *ioCore) Sync() error {
	return c.out.Sync()
}
