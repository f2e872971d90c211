package handler

import (
	"github.com/deppfellow/pos-backend/internal/model"
	"github.com/deppfellow/pos-backend/internal/server"
	"github.com/deppfellow/pos-backend/internal/service"
)

// Handlers groups every HTTP handler so the router receives one value.
type Handlers struct {
	Health    *HealthHandler
	Customers *ResourceHandler[model.Customer, model.PersonInput]
	Cashiers  *ResourceHandler[model.Cashier, model.PersonInput]
	Suppliers *ResourceHandler[model.Supplier, model.SupplierInput]
	Products  *ResourceHandler[model.Product, model.ProductInput]
	Sales     *ResourceHandler[model.Sale, model.SaleInput]
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:    NewHealthHandler(s),
		Customers: NewResourceHandler[model.Customer, model.PersonInput](s, "Customer", "Customer added successfully", services.Customers),
		Cashiers:  NewResourceHandler[model.Cashier, model.PersonInput](s, "Cashier", "Cashier added successfully", services.Cashiers),
		Suppliers: NewResourceHandler[model.Supplier, model.SupplierInput](s, "Supplier", "Supplier added successfully", services.Suppliers),
		Products:  NewResourceHandler[model.Product, model.ProductInput](s, "Product", "Product added successfully", services.Products),
		Sales:     NewResourceHandler[model.Sale, model.SaleInput](s, "Sale", "Sale recorded successfully", services.Sales),
	}
}
