package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitReadsEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")
	Init()

	if Log.GetLevel() != logrus.DebugLevel {
		t.Errorf("Expected debug level, got %v", Log.GetLevel())
	}
	if _, ok := Log.Formatter.(*logrus.JSONFormatter); !ok {
		t.Errorf("Expected JSON formatter, got %T", Log.Formatter)
	}
}

func TestInitFallsBackToInfo(t *testing.T) {
	t.Setenv("LOG_LEVEL", "chatty")
	t.Setenv("LOG_FORMAT", "")
	Init()

	if Log.GetLevel() != logrus.InfoLevel {
		t.Errorf("Expected info level, got %v", Log.GetLevel())
	}
	if _, ok := Log.Formatter.(*logrus.TextFormatter); !ok {
		t.Errorf("Expected text formatter, got %T", Log.Formatter)
	}
}
