package logging

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestLogData_FieldsAndTimings(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logData := NewLogData(logger)

	logData.AddData("transactionCount", 2)
	stop := logData.AddTiming("listTransactionsMs")
	stop()

	logData.Log().Info("done")

	entry := hook.LastEntry()
	assert.NotNil(t, entry)
	assert.Equal(t, 2, entry.Data["transactionCount"])
	assert.Contains(t, entry.Data, "listTransactionsMs")
}

func TestLogData_AddToExistingTiming(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logData := NewLogData(logger)

	logData.AddToExistingTiming("queryMs")()
	logData.AddToExistingTiming("queryMs")()
	logData.Log().Info("done")

	value, ok := hook.LastEntry().Data["queryMs"].(int64)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, value, int64(0))
}

func TestGetLogData(t *testing.T) {
	logger, _ := test.NewNullLogger()
	logData := NewLogData(logger)

	assert.Nil(t, GetLogData(context.Background()))
	assert.Same(t, logData, GetLogData(WithLogData(context.Background(), logData)))
}

func TestSetupLogging_Level(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, SetupLogging("debug").Level)
	assert.Equal(t, logrus.InfoLevel, SetupLogging("not-a-level").Level)
}
