package usecase_test

import (
	"os"
	"testing"

	"go-jobpilot-backend/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}
