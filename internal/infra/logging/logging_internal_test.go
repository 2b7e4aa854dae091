package logging

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give string
		want slog.Level
	}{
		{give: "debug", want: slog.LevelDebug},
		{give: "info", want: slog.LevelInfo},
		{give: "warn", want: slog.LevelWarn},
		{give: "error", want: slog.LevelError},
		{give: "verbose", want: slog.LevelInfo},
		{give: "", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.give, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, parseLevel(tt.give))
		})
	}
}
