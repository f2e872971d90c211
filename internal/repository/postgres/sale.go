package postgres

import (
	"context"

	"github.com/deppfellow/pos-backend/internal/model"
	"github.com/jackc/pgx/v5"
)

// Line items are aggregated in DetailID order. string_agg skips the NULLs
// produced by the left joins, so a sale without details yields NULL.
const saleSelect = `
	SELECT
		s."SalesId",
		s."CustID",
		s."CashierID",
		s."Sales_Date",
		c."CustFname" || ' ' || c."CustLname" AS "CustomerName",
		ca."CashierFname" || ' ' || ca."CashierLname" AS "CashierName",
		string_agg(p."ProdDESC", ', ' ORDER BY sd."DetailID") AS "ProductName",
		string_agg(p."ProductID"::text, ',' ORDER BY sd."DetailID") AS "ProductIDs"
	FROM "Sales" s
	JOIN "Customer" c ON s."CustID" = c."CustID"
	JOIN "Cashier" ca ON s."CashierID" = ca."CashierId"
	LEFT JOIN "Sales_Details" sd ON s."SalesId" = sd."Sales"
	LEFT JOIN "Product" p ON sd."ProductID" = p."ProductID"`

const saleGroup = `
	GROUP BY s."SalesId", c."CustID", ca."CashierId"`

const (
	listSales   = saleSelect + saleGroup + ` ORDER BY s."SalesId" DESC`
	searchSales = saleSelect + `
	WHERE c."CustFname" ILIKE $1 OR c."CustLname" ILIKE $1 OR ca."CashierFname" ILIKE $1 OR ca."CashierLname" ILIKE $1` +
		saleGroup + ` ORDER BY s."SalesId" DESC`
	getSale = saleSelect + `
	WHERE s."SalesId" = $1` + saleGroup

	insertSale        = `INSERT INTO "Sales" ("CustID", "CashierID", "Sales_Date") VALUES ($1, $2, $3) RETURNING "SalesId"`
	updateSale        = `UPDATE "Sales" SET "CustID" = $1, "CashierID" = $2, "Sales_Date" = $3 WHERE "SalesId" = $4`
	deleteSale        = `DELETE FROM "Sales" WHERE "SalesId" = $1`
	insertSaleDetail  = `INSERT INTO "Sales_Details" ("Sales", "ProductID", "CashierID") VALUES ($1, $2, $3)`
	deleteSaleDetails = `DELETE FROM "Sales_Details" WHERE "Sales" = $1`
)

// SaleStore keeps a Sales row and its Sales_Details rows in step.
type SaleStore struct {
	db DBTX
}

func NewSaleStore(db DBTX) *SaleStore {
	return &SaleStore{db: db}
}

func scanSale(row pgx.CollectableRow) (model.Sale, error) {
	var s model.Sale
	err := row.Scan(
		&s.SalesID, &s.CustID, &s.CashierID, &s.SalesDate,
		&s.CustomerName, &s.CashierName, &s.ProductName, &s.ProductIDs,
	)
	return s, err
}

func (r *SaleStore) List(ctx context.Context) ([]model.Sale, error) {
	return collect(ctx, r.db, scanSale, listSales)
}

// Search matches the first or last name of the customer or the cashier.
func (r *SaleStore) Search(ctx context.Context, term string) ([]model.Sale, error) {
	return collect(ctx, r.db, scanSale, searchSales, contains(term))
}

func (r *SaleStore) Get(ctx context.Context, id string) (*model.Sale, error) {
	if !matchable(id) {
		return nil, nil
	}
	return collectOne(ctx, r.db, scanSale, getSale, id)
}

// insertDetails writes one detail row per line item, in order.
func insertDetails(ctx context.Context, tx pgx.Tx, salesID any, in model.SaleInput) error {
	for _, productID := range in.LineItems() {
		if _, err := tx.Exec(ctx, insertSaleDetail, salesID, productID, in.CashierID); err != nil {
			return err
		}
	}
	return nil
}

func (r *SaleStore) Create(ctx context.Context, in model.SaleInput) (int64, error) {
	var id int64

	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, insertSale, in.CustomerID, in.CashierID, in.Date).Scan(&id); err != nil {
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
	if !matchable(id) {
		return nil
	}

	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, updateSale, in.CustomerID, in.CashierID, in.Date, id); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, deleteSaleDetails, id); err != nil {
			return err
		}

		return insertDetails(ctx, tx, id, in)
	})
}

// Delete removes the detail rows before the sale.
func (r *SaleStore) Delete(ctx context.Context, id string) error {
	if !matchable(id) {
		return nil
	}

	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, deleteSaleDetails, id); err != nil {
			return err
		}

		_, err := tx.Exec(ctx, deleteSale, id)
		return err
	})
}
