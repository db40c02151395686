package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const (
	colorReset = "\x1b[0m"
	colorBold  = "\x1b[1m"

	colorTime      = "\x1b[38;5;108m"
	colorComponent = "\x1b[38;5;208m"
	colorValue     = "\x1b[38;5;109m"
	colorNumber    = "\x1b[38;5;175m"
	colorWarn      = "\x1b[38;5;214m"
	colorWarnBg    = "\x1b[48;5;58m"
	colorError     = "\x1b[38;5;167m"
	colorErrorBg   = "\x1b[48;5;88m"
)

var bufferPool = buffer.NewPool()

// compactEncoder prints one short line per entry:
// "13:04:35  c.compiler  compiled  Foo.java 84 cells"
type compactEncoder struct {
	zapcore.Encoder
}

func newCompactEncoder() *compactEncoder {
	return &compactEncoder{
		Encoder: zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
	}
}

func (enc *compactEncoder) Clone() zapcore.Encoder {
	return &compactEncoder{Encoder: enc.Encoder.Clone()}
}

func (enc *compactEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	final := bufferPool.Get()

	final.AppendString(colorTime)
	final.AppendString(ent.Time.Format("15:04:05"))
	final.AppendString(colorReset)

	if s := levelString(ent.Level); s != "" {
		final.AppendString("  ")
		final.AppendString(s)
	}

	if ent.LoggerName != "" {
		final.AppendString("  ")
		final.AppendString(colorComponent)
		final.AppendString(abbreviateName(ent.LoggerName))
		final.AppendString(colorReset)
	}

	final.AppendString("  ")
	final.AppendString(ent.Message)

	if values := fieldValues(fields); values != "" {
		final.AppendString("  ")
		final.AppendString(values)
	}

	final.AppendString("\n")
	return final, nil
}

// levelString is empty for info and debug entries
func levelString(level zapcore.Level) string {
	switch level {
	case zapcore.WarnLevel:
		return colorBold + colorWarnBg + colorWarn + "WARN" + colorReset
	case zapcore.ErrorLevel:
		return colorBold + colorErrorBg + colorError + "ERROR" + colorReset
	case zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		return colorBold + colorErrorBg + colorError + level.CapitalString() + colorReset
	default:
		return ""
	}
}

// abbreviateName shortens component names: code.compiler -> c.compiler
func abbreviateName(name string) string {
	parts := strings.Split(name, ".")
	if len(parts) > 1 && parts[0] != "" {
		return string(parts[0][0]) + "." + strings.Join(parts[1:], ".")
	}
	return name
}

func fieldValue(field zapcore.Field) string {
	switch field.Type {
	case zapcore.StringType:
		return field.String
	case zapcore.Int64Type, zapcore.Int32Type, zapcore.Int16Type, zapcore.Int8Type,
		zapcore.Uint64Type, zapcore.Uint32Type, zapcore.Uint16Type, zapcore.Uint8Type:
		return fmt.Sprintf("%d", field.Integer)
	case zapcore.BoolType:
		return fmt.Sprintf("%t", field.Integer == 1)
	}
	if field.Interface != nil {
		return fmt.Sprintf("%v", field.Interface)
	}
	return ""
}

// fieldValues renders well-known fields by value and everything else as key=value.
// Input: {"file": "Foo.java", "cells": 84, "duration_ms": 2, "unit": "Foo"}
// Output: "Foo.java 84 cells 2ms unit=Foo"
func fieldValues(fields []zapcore.Field) string {
	var values []string

	for _, field := range fields {
		val := fieldValue(field)
		if val == "" {
			continue
		}
		switch field.Key {
		case FieldFile, FieldTag, FieldRunID:
			values = append(values, colorValue+val+colorReset)
		case FieldCells:
			values = append(values, colorNumber+val+colorReset+" cells")
		case FieldDiagnostics:
			values = append(values, colorNumber+val+colorReset+" diagnostics")
		case FieldDurationMS:
			values = append(values, colorNumber+val+colorReset+"ms")
		case FieldError:
			values = append(values, colorError+val+colorReset)
		default:
			values = append(values, field.Key+"="+val)
		}
	}

	return strings.Join(values, " ")
}
