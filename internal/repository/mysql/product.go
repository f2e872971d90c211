package mysql

import (
	"context"
	"database/sql"

	"github.com/deppfellow/pos-backend/internal/model"
)

const productSelect = `
	SELECT p.ProductID, p.ProdDESC, p.SupplierID, s.SupplierDEC AS SupplierName
	FROM Product p
	LEFT JOIN Supplier s ON p.SupplierID = s.SupplierId`

const (
	listProducts   = productSelect + ` ORDER BY p.ProductID DESC`
	searchProducts = productSelect + ` WHERE p.ProdDESC LIKE ? OR s.SupplierDEC LIKE ? ORDER BY p.ProductID DESC`
	getProduct     = productSelect + ` WHERE p.ProductID = ?`

	insertProduct         = `INSERT INTO Product (ProdDESC, SupplierID) VALUES (?, ?)`
	updateProduct         = `UPDATE Product SET ProdDESC = ?, SupplierID = ? WHERE ProductID = ?`
	deleteProduct         = `DELETE FROM Product WHERE ProductID = ?`
	insertProductSupplier = `INSERT INTO Product_Supplier (ProductID, SupplierID) VALUES (?, ?)`
	deleteProductSupplier = `DELETE FROM Product_Supplier WHERE ProductID = ?`
)

// ProductStore keeps Product and its Product_Supplier association in step.
// Every write runs in one transaction.
type ProductStore struct {
	db *sql.DB
}

func NewProductStore(db *sql.DB) *ProductStore {
	return &ProductStore{db: db}
}

func scanProduct(row scanner) (model.Product, error) {
	var (
		p          model.Product
		desc, name sql.NullString
		supplierID sql.NullInt64
	)
	if err := row.Scan(&p.ProductID, &desc, &supplierID, &name); err != nil {
		return p, err
	}

	p.Description = stringPtr(desc)
	p.SupplierID = int64Ptr(supplierID)
	p.SupplierName = stringPtr(name)
	return p, nil
}

func (r *ProductStore) List(ctx context.Context) ([]model.Product, error) {
	return queryAll(ctx, r.db, scanProduct, listProducts)
}

// Search matches the product description or the supplier description.
func (r *ProductStore) Search(ctx context.Context, term string) ([]model.Product, error) {
	return queryAll(ctx, r.db, scanProduct, searchProducts, repeat(contains(term), 2)...)
}

func (r *ProductStore) Get(ctx context.Context, id string) (*model.Product, error) {
	return queryOne(ctx, r.db, scanProduct, getProduct, id)
}

func (r *ProductStore) Create(ctx context.Context, in model.ProductInput) (int64, error) {
	var id int64

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, insertProduct, in.Description, in.SupplierID)
		if err != nil {
			return err
		}

		if id, err = result.LastInsertId(); err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, insertProductSupplier, id, in.SupplierID)
		return err
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// Update rewrites the product and replaces its association row.
func (r *ProductStore) Update(ctx context.Context, id string, in model.ProductInput) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, updateProduct, in.Description, in.SupplierID, id); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, deleteProductSupplier, id); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx, insertProductSupplier, id, in.SupplierID)
		return err
	})
}

// Delete removes the association row before the product.
func (r *ProductStore) Delete(ctx context.Context, id string) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteProductSupplier, id); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx, deleteProduct, id)
		return err
	})
}
