package project_test

import (
	"os"
	"testing"

	"github.com/teamsched/scheduler-backend/internal/testutil"
)

func TestMain(m *testing.M) {
	os.Exit(testutil.RunWithPostgres(m))
}
