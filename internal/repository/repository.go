// Package repository handles all interactions with the database.
//
// It declares the store contract shared by every resource and picks the
// implementation matching the configured driver (see the postgres and
// mysql subpackages), keeping SQL away from the service layer.
package repository

import (
	"context"

	"github.com/deppfellow/pos-backend/internal/model"
	"github.com/deppfellow/pos-backend/internal/repository/mysql"
	"github.com/deppfellow/pos-backend/internal/repository/postgres"
)

// Store is the contract of a resource store. T is the read model and In
// the write payload.
//
// Get returns nil without error when id matches nothing. Update and Delete
// succeed on a missing id. Ids are passed through to the store as received.
type Store[T, In any] interface {
	List(ctx context.Context) ([]T, error)
	Search(ctx context.Context, term string) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, in In) (int64, error)
	Update(ctx context.Context, id string, in In) error
	Delete(ctx context.Context, id string) error
}

type (
	CustomerStore = Store[model.Customer, model.PersonInput]
	CashierStore  = Store[model.Cashier, model.PersonInput]
	SupplierStore = Store[model.Supplier, model.SupplierInput]
	ProductStore  = Store[model.Product, model.ProductInput]
	SaleStore     = Store[model.Sale, model.SaleInput]
)

var (
	_ CustomerStore = (*postgres.Table[model.Customer, model.PersonInput])(nil)
	_ CashierStore  = (*postgres.Table[model.Cashier, model.PersonInput])(nil)
	_ SupplierStore = (*postgres.Table[model.Supplier, model.SupplierInput])(nil)
	_ ProductStore  = (*postgres.ProductStore)(nil)
	_ SaleStore     = (*postgres.SaleStore)(nil)

	_ CustomerStore = (*mysql.Table[model.Customer, model.PersonInput])(nil)
	_ CashierStore  = (*mysql.Table[model.Cashier, model.PersonInput])(nil)
	_ SupplierStore = (*mysql.Table[model.Supplier, model.SupplierInput])(nil)
	_ ProductStore  = (*mysql.ProductStore)(nil)
	_ SaleStore     = (*mysql.SaleStore)(nil)
)
