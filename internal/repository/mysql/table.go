package mysql

import (
	"context"
	"database/sql"

	"github.com/deppfellow/pos-backend/internal/model"
)

type tableQueries struct {
	list   string
	search string
	get    string
	insert string
	update string
	delete string

	// searchParams is the number of placeholders in search, all bound to
	// the same pattern.
	searchParams int
}

// Table is a store over a single table. Each write is one statement on a
// pooled connection.
type Table[T, In any] struct {
	db     *sql.DB
	q      tableQueries
	scan   scanFunc[T]
	values func(In) []any
}

func (t *Table[T, In]) List(ctx context.Context) ([]T, error) {
	return queryAll(ctx, t.db, t.scan, t.q.list)
}

// Search matches term as a substring under the column collation.
func (t *Table[T, In]) Search(ctx context.Context, term string) ([]T, error) {
	return queryAll(ctx, t.db, t.scan, t.q.search, repeat(contains(term), t.q.searchParams)...)
}

func (t *Table[T, In]) Get(ctx context.Context, id string) (*T, error) {
	return queryOne(ctx, t.db, t.scan, t.q.get, id)
}

func (t *Table[T, In]) Create(ctx context.Context, in In) (int64, error) {
	result, err := t.db.ExecContext(ctx, t.q.insert, t.values(in)...)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// Update succeeds without touching anything when id does not exist.
func (t *Table[T, In]) Update(ctx context.Context, id string, in In) error {
	_, err := t.db.ExecContext(ctx, t.q.update, append(t.values(in), id)...)
	return err
}

// Delete succeeds without touching anything when id does not exist.
func (t *Table[T, In]) Delete(ctx context.Context, id string) error {
	_, err := t.db.ExecContext(ctx, t.q.delete, id)
	return err
}

func personValues(in model.PersonInput) []any {
	return []any{in.Fname, in.Lname}
}

func NewCustomerStore(db *sql.DB) *Table[model.Customer, model.PersonInput] {
	return &Table[model.Customer, model.PersonInput]{
		db: db,
		q: tableQueries{
			list:         `SELECT CustID, CustFname, CustLname FROM Customer ORDER BY CustID DESC`,
			search:       `SELECT CustID, CustFname, CustLname FROM Customer WHERE CustFname LIKE ? OR CustLname LIKE ? ORDER BY CustID DESC`,
			get:          `SELECT CustID, CustFname, CustLname FROM Customer WHERE CustID = ?`,
			insert:       `INSERT INTO Customer (CustFname, CustLname) VALUES (?, ?)`,
			update:       `UPDATE Customer SET CustFname = ?, CustLname = ? WHERE CustID = ?`,
			delete:       `DELETE FROM Customer WHERE CustID = ?`,
			searchParams: 2,
		},
		scan: func(row scanner) (model.Customer, error) {
			var (
				c            model.Customer
				fname, lname sql.NullString
			)
			if err := row.Scan(&c.CustID, &fname, &lname); err != nil {
				return c, err
			}
			c.CustFname, c.CustLname = stringPtr(fname), stringPtr(lname)
			return c, nil
		},
		values: personValues,
	}
}

func NewCashierStore(db *sql.DB) *Table[model.Cashier, model.PersonInput] {
	return &Table[model.Cashier, model.PersonInput]{
		db: db,
		q: tableQueries{
			list:         `SELECT CashierId, CashierFname, CashierLname FROM Cashier ORDER BY CashierId DESC`,
			search:       `SELECT CashierId, CashierFname, CashierLname FROM Cashier WHERE CashierFname LIKE ? OR CashierLname LIKE ? ORDER BY CashierId DESC`,
			get:          `SELECT CashierId, CashierFname, CashierLname FROM Cashier WHERE CashierId = ?`,
			insert:       `INSERT INTO Cashier (CashierFname, CashierLname) VALUES (?, ?)`,
			update:       `UPDATE Cashier SET CashierFname = ?, CashierLname = ? WHERE CashierId = ?`,
			delete:       `DELETE FROM Cashier WHERE CashierId = ?`,
			searchParams: 2,
		},
		scan: func(row scanner) (model.Cashier, error) {
			var (
				c            model.Cashier
				fname, lname sql.NullString
			)
			if err := row.Scan(&c.CashierID, &fname, &lname); err != nil {
				return c, err
			}
			c.CashierFname, c.CashierLname = stringPtr(fname), stringPtr(lname)
			return c, nil
		},
		values: personValues,
	}
}

func NewSupplierStore(db *sql.DB) *Table[model.Supplier, model.SupplierInput] {
	return &Table[model.Supplier, model.SupplierInput]{
		db: db,
		q: tableQueries{
			list:         `SELECT SupplierId, SupplierDEC FROM Supplier ORDER BY SupplierId DESC`,
			search:       `SELECT SupplierId, SupplierDEC FROM Supplier WHERE SupplierDEC LIKE ? ORDER BY SupplierId DESC`,
			get:          `SELECT SupplierId, SupplierDEC FROM Supplier WHERE SupplierId = ?`,
			insert:       `INSERT INTO Supplier (SupplierDEC) VALUES (?)`,
			update:       `UPDATE Supplier SET SupplierDEC = ? WHERE SupplierId = ?`,
			delete:       `DELETE FROM Supplier WHERE SupplierId = ?`,
			searchParams: 1,
		},
		scan: func(row scanner) (model.Supplier, error) {
			var (
				s    model.Supplier
				desc sql.NullString
			)
			if err := row.Scan(&s.SupplierID, &desc); err != nil {
				return s, err
			}
			s.Description = stringPtr(desc)
			return s, nil
		},
		values: func(in model.SupplierInput) []any {
			return []any{in.Name}
		},
	}
}
