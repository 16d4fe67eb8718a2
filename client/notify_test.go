package client

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNotifierFunc(t *testing.T) {
	var got []string
	n := NotifierFunc(func(_ context.Context, sev Severity, msg string) {
		got = append(got, string(sev)+":"+msg)
	})
	n.Notify(context.Background(), SeverityWarning, "careful")
	assert.Equal(t, []string{"warning:careful"}, got)
}

func TestSeverityLevel(t *testing.T) {
	assert.Equal(t, zerolog.ErrorLevel, SeverityError.level())
	assert.Equal(t, zerolog.WarnLevel, SeverityWarning.level())
	assert.Equal(t, zerolog.InfoLevel, SeveritySuccess.level())
	assert.Equal(t, zerolog.InfoLevel, SeverityInfo.level())
}
