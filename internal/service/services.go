package service

import (
	"github.com/deppfellow/pos-backend/internal/model"
	"github.com/deppfellow/pos-backend/internal/repository"
	"github.com/deppfellow/pos-backend/internal/server"
)

type Services struct {
	Customers *Resource[model.Customer, model.PersonInput]
	Cashiers  *Resource[model.Cashier, model.PersonInput]
	Suppliers *Resource[model.Supplier, model.SupplierInput]
	Products  *Resource[model.Product, model.ProductInput]
	Sales     *Resource[model.Sale, model.SaleInput]
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Customers: NewResource("customer", repos.Customers, s.Logger),
		Cashiers:  NewResource("cashier", repos.Cashiers, s.Logger),
		Suppliers: NewResource("supplier", repos.Suppliers, s.Logger),
		Products:  NewResource("product", repos.Products, s.Logger),
		Sales:     NewResource("sale", repos.Sales, s.Logger),
	}, nil
}
