package storage

import (
	"database/sql"
	"log"

	_ "github.com/lib/pq"

	"github.com/carson-networks/report-server/internal/config"
	"github.com/carson-networks/report-server/internal/storage/sqlconfig"
)

type Storage struct {
	DB           *sql.DB
	Reports      sqlconfig.ICategoryReportTable
	Transactions sqlconfig.ITransactionTable
	Accounts     sqlconfig.IAccountTable
}

func NewStorage(env *config.Config) *Storage {
	connStr := "postgres://" + env.PostgresUsername + ":" +
		env.PostgresPassword + "@" + env.PostgresAddress + ":" +
		env.PostgresPort + "/" + env.PostgresDB + "?sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}

	reports := sqlconfig.NewCategoryReportTable(db)
	transactions := sqlconfig.NewTransactionsTable(db)
	accounts := sqlconfig.NewAccountsTable(db)

	return &Storage{
		DB:           db,
		Reports:      &reports,
		Transactions: &transactions,
		Accounts:     &accounts,
	}
}
