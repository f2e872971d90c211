package repository

import (
	"database/sql"
	"fmt"

	"github.com/deppfellow/pos-backend/internal/config"
	"github.com/deppfellow/pos-backend/internal/repository/mysql"
	"github.com/deppfellow/pos-backend/internal/repository/postgres"
	"github.com/deppfellow/pos-backend/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Customers CustomerStore
	Cashiers  CashierStore
	Suppliers SupplierStore
	Products  ProductStore
	Sales     SaleStore
}

// NewRepositories builds the stores over the server's pool for the
// configured driver.
func NewRepositories(s *server.Server) (*Repositories, error) {
	switch s.DB.Driver {
	case config.DriverPostgres:
		return NewPostgresRepositories(s.DB.Pool), nil
	case config.DriverMySQL:
		return NewMySQLRepositories(s.DB.SQL), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", s.DB.Driver)
	}
}

func NewPostgresRepositories(db postgres.DBTX) *Repositories {
	return &Repositories{
		Customers: postgres.NewCustomerStore(db),
		Cashiers:  postgres.NewCashierStore(db),
		Suppliers: postgres.NewSupplierStore(db),
		Products:  postgres.NewProductStore(db),
		Sales:     postgres.NewSaleStore(db),
	}
}

func NewMySQLRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Customers: mysql.NewCustomerStore(db),
		Cashiers:  mysql.NewCashierStore(db),
		Suppliers: mysql.NewSupplierStore(db),
		Products:  mysql.NewProductStore(db),
		Sales:     mysql.NewSaleStore(db),
	}
}
