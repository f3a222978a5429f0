package db

import (
	"database/sql"
	"fmt"
	"os"
	"testing"
)

var (
	testQueries *Queries
	testDB      *sql.DB
)

func TestMain(m *testing.M) {
	var err error
	testDB, err = Connect()
	if err != nil {
		fmt.Println("skipping db tests:", err)
		os.Exit(0)
	}

	testQueries = New(testDB)

	os.Exit(m.Run())
}
