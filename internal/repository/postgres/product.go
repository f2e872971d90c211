package postgres

import (
	"context"

	"github.com/deppfellow/pos-backend/internal/model"
	"github.com/jackc/pgx/v5"
)

const productSelect = `
	SELECT p."ProductID", p."ProdDESC", p."SupplierID", s."SupplierDEC" AS "SupplierName"
	FROM "Product" p
	LEFT JOIN "Supplier" s ON p."SupplierID" = s."SupplierId"`

const (
	listProducts   = productSelect + ` ORDER BY p."ProductID" DESC`
	searchProducts = productSelect + ` WHERE p."ProdDESC" ILIKE $1 OR s."SupplierDEC" ILIKE $1 ORDER BY p."ProductID" DESC`
	getProduct     = productSelect + ` WHERE p."ProductID" = $1`

	insertProduct         = `INSERT INTO "Product" ("ProdDESC", "SupplierID") VALUES ($1, $2) RETURNING "ProductID"`
	updateProduct         = `UPDATE "Product" SET "ProdDESC" = $1, "SupplierID" = $2 WHERE "ProductID" = $3`
	deleteProduct         = `DELETE FROM "Product" WHERE "ProductID" = $1`
	insertProductSupplier = `INSERT INTO "Product_Supplier" ("ProductID", "SupplierID") VALUES ($1, $2)`
	deleteProductSupplier = `DELETE FROM "Product_Supplier" WHERE "ProductID" = $1`
)

// ProductStore keeps Product and its Product_Supplier association in step.
// Every write runs in one transaction.
type ProductStore struct {
	db DBTX
}

func NewProductStore(db DBTX) *ProductStore {
	return &ProductStore{db: db}
}

func scanProduct(row pgx.CollectableRow) (model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ProductID, &p.Description, &p.SupplierID, &p.SupplierName)
	return p, err
}

func (r *ProductStore) List(ctx context.Context) ([]model.Product, error) {
	return collect(ctx, r.db, scanProduct, listProducts)
}

// Search matches the product description or the supplier description.
func (r *ProductStore) Search(ctx context.Context, term string) ([]model.Product, error) {
	return collect(ctx, r.db, scanProduct, searchProducts, contains(term))
}

func (r *ProductStore) Get(ctx context.Context, id string) (*model.Product, error) {
	if !matchable(id) {
		return nil, nil
	}
	return collectOne(ctx, r.db, scanProduct, getProduct, id)
}

func (r *ProductStore) Create(ctx context.Context, in model.ProductInput) (int64, error) {
	var id int64

	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, insertProduct, in.Description, in.SupplierID).Scan(&id); err != nil {
			return err
		}

		_, err := tx.Exec(ctx, insertProductSupplier, id, in.SupplierID)
		return err
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// Update rewrites the product and replaces its association row.
func (r *ProductStore) Update(ctx context.Context, id string, in model.ProductInput) error {
	if !matchable(id) {
		return nil
	}

	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, updateProduct, in.Description, in.SupplierID, id); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, deleteProductSupplier, id); err != nil {
			return err
		}

		_, err := tx.Exec(ctx, insertProductSupplier, id, in.SupplierID)
		return err
	})
}

// Delete removes the association row before the product.
func (r *ProductStore) Delete(ctx context.Context, id string) error {
	if !matchable(id) {
		return nil
	}

	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, deleteProductSupplier, id); err != nil {
			return err
		}

		_, err := tx.Exec(ctx, deleteProduct, id)
		return err
	})
}
