package mysql

import (
	"context"
	"database/sql"

	"github.com/deppfellow/pos-backend/internal/model"
)

// Line items are aggregated in DetailID order. GROUP_CONCAT skips the NULLs
// produced by the left joins, so a sale without details yields NULL.
const saleSelect = `
	SELECT
		s.SalesId,
		s.CustID,
		s.CashierID,
		s.Sales_Date,
		CONCAT(c.CustFname, ' ', c.CustLname) AS CustomerName,
		CONCAT(ca.CashierFname, ' ', ca.CashierLname) AS CashierName,
		GROUP_CONCAT(p.ProdDESC ORDER BY sd.DetailID SEPARATOR ', ') AS ProductName,
		GROUP_CONCAT(p.ProductID ORDER BY sd.DetailID SEPARATOR ',') AS ProductIDs
	FROM Sales s
	JOIN Customer c ON s.CustID = c.CustID
	JOIN Cashier ca ON s.CashierID = ca.CashierId
	LEFT JOIN Sales_Details sd ON s.SalesId = sd.Sales
	LEFT JOIN Product p ON sd.ProductID = p.ProductID`

const saleGroup = `
	GROUP BY s.SalesId, c.CustID, ca.CashierId`

const (
	listSales   = saleSelect + saleGroup + ` ORDER BY s.SalesId DESC`
	searchSales = saleSelect + `
	WHERE c.CustFname LIKE ? OR c.CustLname LIKE ? OR ca.CashierFname LIKE ? OR ca.CashierLname LIKE ?` +
		saleGroup + ` ORDER BY s.SalesId DESC`
	getSale = saleSelect + `
	WHERE s.SalesId = ?` + saleGroup

	insertSale        = `INSERT INTO Sales (CustID, CashierID, Sales_Date) VALUES (?, ?, ?)`
	updateSale        = `UPDATE Sales SET CustID = ?, CashierID = ?, Sales_Date = ? WHERE SalesId = ?`
	deleteSale        = `DELETE FROM Sales WHERE SalesId = ?`
	insertSaleDetail  = `INSERT INTO Sales_Details (Sales, ProductID, CashierID) VALUES (?, ?, ?)`
	deleteSaleDetails = `DELETE FROM Sales_Details WHERE Sales = ?`
)

// SaleStore keeps a Sales row and its Sales_Details rows in step.
type SaleStore struct {
	db *sql.DB
}

func NewSaleStore(db *sql.DB) *SaleStore {
	return &SaleStore{db: db}
}

func scanSale(row scanner) (model.Sale, error) {
	var (
		s                                model.Sale
		date                             sql.NullTime
		customer, cashier, names, idList sql.NullString
	)
	if err := row.Scan(&s.SalesID, &s.CustID, &s.CashierID, &date, &customer, &cashier, &names, &idList); err != nil {
		return s, err
	}

	s.SalesDate = timePtr(date)
	s.CustomerName = stringPtr(customer)
	s.CashierName = stringPtr(cashier)
	s.ProductName = stringPtr(names)
	s.ProductIDs = stringPtr(idList)
	return s, nil
}

func (r *SaleStore) List(ctx context.Context) ([]model.Sale, error) {
	return queryAll(ctx, r.db, scanSale, listSales)
}

// Search matches the first or last name of the customer or the cashier.
func (r *SaleStore) Search(ctx context.Context, term string) ([]model.Sale, error) {
	return queryAll(ctx, r.db, scanSale, searchSales, repeat(contains(term), 4)...)
}

func (r *SaleStore) Get(ctx context.Context, id string) (*model.Sale, error) {
	return queryOne(ctx, r.db, scanSale, getSale, id)
}

// insertDetails writes one detail row per line item, in order.
func insertDetails(ctx context.Context, tx *sql.Tx, salesID any, in model.SaleInput) error {
	for _, productID := range in.LineItems() {
		if _, err := tx.ExecContext(ctx, insertSaleDetail, salesID, productID, in.CashierID); err != nil {
			return err
		}
	}
	return nil
}

func (r *SaleStore) Create(ctx context.Context, in model.SaleInput) (int64, error) {
	var id int64

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, insertSale, in.CustomerID, in.CashierID, in.Date)
		if err != nil {
			return err
		}

		if id, err = result.LastInsertId(); err != nil {
			return err
		}

		return insertDetails(ctx, tx, id, in)
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// Update rewrites the sale and replaces all of its detail rows.
func (r *SaleStore) Update(ctx context.Context, id string, in model.SaleInput) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, updateSale, in.CustomerID, in.CashierID, in.Date, id); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, deleteSaleDetails, id); err != nil {
			return err
		}

		return insertDetails(ctx, tx, id, in)
	})
}

// Delete removes the detail rows before the sale.
func (r *SaleStore) Delete(ctx context.Context, id string) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteSaleDetails, id); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx, deleteSale, id)
		return err
	})
}
