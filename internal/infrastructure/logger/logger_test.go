package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew(t *testing.T) {
	t.Run("json output with service field", func(t *testing.T) {
		var buf bytes.Buffer
		log := New("debug", "production", &buf)
		log.Info().Str("company_id", "ACME").Msg("hello")

		var line map[string]any
		if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
			t.Fatalf("expected json line, got %q: %v", buf.String(), err)
		}
		if line["service"] != "pcg-compliance" || line["company_id"] != "ACME" || line["message"] != "hello" {
			t.Fatalf("unexpected fields: %v", line)
		}
	})

	t.Run("invalid level falls back to info", func(t *testing.T) {
		var buf bytes.Buffer
		log := New("verbose", "production", &buf)
		if log.GetLevel() != zerolog.InfoLevel {
			t.Fatalf("expected info level, got %s", log.GetLevel())
		}
		log.Debug().Msg("hidden")
		if buf.Len() != 0 {
			t.Fatalf("debug line should be filtered: %q", buf.String())
		}
	})
}
