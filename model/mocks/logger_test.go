package mocks

import "testing"

func TestLogger(t *testing.T) {
	t.Run("Debug", func(t *testing.T) {
		var got string
		lo := &Logger{
			MockDebug: func(message string) {
				got = message
			},
		}
		lo.Debug("antani")
		if got != "antani" {
			t.Fatal("unexpected message", got)
		}
	})

	t.Run("Debugf", func(t *testing.T) {
		var got string
		lo := &Logger{
			MockDebugf: func(format string, v ...interface{}) {
				got = format
			},
		}
		lo.Debugf("antani %d", 11)
		if got != "antani %d" {
			t.Fatal("unexpected format", got)
		}
	})

	t.Run("Info", func(t *testing.T) {
		var got string
		lo := &Logger{
			MockInfo: func(message string) {
				got = message
			},
		}
		lo.Info("antani")
		if got != "antani" {
			t.Fatal("unexpected message", got)
		}
	})

	t.Run("Infof", func(t *testing.T) {
		var got string
		lo := &Logger{
			MockInfof: func(format string, v ...interface{}) {
				got = format
			},
		}
		lo.Infof("antani %d", 11)
		if got != "antani %d" {
			t.Fatal("unexpected format", got)
		}
	})

	t.Run("Warn", func(t *testing.T) {
		var got string
		lo := &Logger{
			MockWarn: func(message string) {
				got = message
			},
		}
		lo.Warn("antani")
		if got != "antani" {
			t.Fatal("unexpected message", got)
		}
	})

	t.Run("Warnf", func(t *testing.T) {
		var got string
		lo := &Logger{
			MockWarnf: func(format string, v ...interface{}) {
				got = format
			},
		}
		lo.Warnf("antani %d", 11)
		if got != "antani %d" {
			t.Fatal("unexpected format", got)
		}
	})
}
