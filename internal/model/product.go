package model

// Supplier is a row of the Supplier table.
type Supplier struct {
	SupplierID  int64   `json:"SupplierId"`
	Description *string `json:"SupplierDEC"`
}

// SupplierInput is the body for creating or updating a supplier.
type SupplierInput struct {
	Name *string `json:"name"`
}

// Product is a Product row joined with its supplier's description.
type Product struct {
	ProductID    int64   `json:"ProductID"`
	Description  *string `json:"ProdDESC"`
	SupplierID   *int64  `json:"SupplierID"`
	SupplierName *string `json:"SupplierName"`
}

// ProductInput is the body for creating or updating a product. The same
// supplier id is written to Product and to Product_Supplier.
type ProductInput struct {
	Description *string `json:"description"`
	SupplierID  *int64  `json:"supplierId"`
}
