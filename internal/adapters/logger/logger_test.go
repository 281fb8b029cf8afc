package logger_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/asset-bender/bender/internal/adapters/logger"
)

func TestLogger_Levels(t *testing.T) {
	log := logger.New()
	concrete, ok := log.(*logger.Logger)
	if !ok {
		t.Fatalf("expected *logger.Logger, got %T", log)
	}

	var buf bytes.Buffer
	concrete.SetOutput(&buf)

	log.Info("resolved scaffold")
	log.Warn("frozen snapshot missing")
	log.Error(errors.New("manifest unreadable"))

	out := buf.String()
	for _, want := range []string{
		"level=INFO",
		"resolved scaffold",
		"level=WARN",
		"frozen snapshot missing",
		"level=ERROR",
		"manifest unreadable",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestLogger_SetOutputRedirects(t *testing.T) {
	log := logger.New().(*logger.Logger)

	var first, second bytes.Buffer
	log.SetOutput(&first)
	log.Info("one")
	log.SetOutput(&second)
	log.Info("two")

	if strings.Contains(first.String(), "two") {
		t.Error("expected second message to go to the new writer only")
	}
	if !strings.Contains(second.String(), "two") {
		t.Error("expected second writer to receive the message")
	}
}
