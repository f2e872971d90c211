package model

import "time"

// Sale is the sales read model: the Sales row, the names of its customer
// and cashier, and its line items aggregated in detail-row order.
//
// ProductName joins product descriptions with ", " and ProductIDs joins
// product ids with ",". Both are null for a sale without detail rows.
type Sale struct {
	SalesID      int64      `json:"SalesId"`
	CustID       int64      `json:"CustID"`
	CashierID    int64      `json:"CashierID"`
	SalesDate    *time.Time `json:"Sales_Date"`
	CustomerName *string    `json:"CustomerName"`
	CashierName  *string    `json:"CashierName"`
	ProductName  *string    `json:"ProductName"`
	ProductIDs   *string    `json:"ProductIDs"`
}

// SaleInput is the body for recording or updating a sale.
//
// ProductIDs, when non-empty, lists the line items in order and replaces
// ProductID. Otherwise a single detail row is written with ProductID,
// which may be null.
type SaleInput struct {
	CustomerID *int64  `json:"customerId"`
	CashierID  *int64  `json:"cashierId"`
	ProductID  *int64  `json:"productId"`
	ProductIDs []int64 `json:"productIds,omitempty"`
	Date       *string `json:"date"`
}

// LineItems returns the product ids to write as detail rows, in order.
func (in SaleInput) LineItems() []*int64 {
	if len(in.ProductIDs) == 0 {
		return []*int64{in.ProductID}
	}

	items := make([]*int64, len(in.ProductIDs))
	for i := range in.ProductIDs {
		items[i] = &in.ProductIDs[i]
	}
	return items
}
