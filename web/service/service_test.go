package service

import (
	"os"
	"testing"

	"bioanalytica/database"
	"bioanalytica/logger"

	"github.com/op/go-logging"
)

const testDBPath = "test.db"

func TestMain(m *testing.M) {
	if dir, err := os.MkdirTemp("", "bio-log"); err == nil {
		os.Setenv("BIO_LOG_FOLDER", dir)
	}
	logger.InitLogger(logging.DEBUG)
	os.Exit(m.Run())
}

func setup() {
	os.Remove(testDBPath)
	if err := database.InitDB(testDBPath); err != nil {
		panic(err)
	}
}

func teardown() {
	db, _ := database.GetDB().DB()
	db.Close()
	os.Remove(testDBPath)
}
