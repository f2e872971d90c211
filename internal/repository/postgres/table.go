package postgres

import (
	"context"

	"github.com/deppfellow/pos-backend/internal/model"
	"github.com/jackc/pgx/v5"
)

type tableQueries struct {
	list   string
	search string
	get    string
	insert string
	update string
	delete string
}

// Table is a store over a single table. Each write is one statement on a
// pooled connection.
type Table[T, In any] struct {
	db     DBTX
	q      tableQueries
	scan   pgx.RowToFunc[T]
	values func(In) []any
}

func (t *Table[T, In]) List(ctx context.Context) ([]T, error) {
	return collect(ctx, t.db, t.scan, t.q.list)
}

// Search matches term as a substring, case-insensitively.
func (t *Table[T, In]) Search(ctx context.Context, term string) ([]T, error) {
	return collect(ctx, t.db, t.scan, t.q.search, contains(term))
}

func (t *Table[T, In]) Get(ctx context.Context, id string) (*T, error) {
	if !matchable(id) {
		return nil, nil
	}
	return collectOne(ctx, t.db, t.scan, t.q.get, id)
}

func (t *Table[T, In]) Create(ctx context.Context, in In) (int64, error) {
	var id int64
	if err := t.db.QueryRow(ctx, t.q.insert, t.values(in)...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// Update succeeds without touching anything when id does not exist.
func (t *Table[T, In]) Update(ctx context.Context, id string, in In) error {
	if !matchable(id) {
		return nil
	}
	_, err := t.db.Exec(ctx, t.q.update, append(t.values(in), id)...)
	return err
}

// Delete succeeds without touching anything when id does not exist.
func (t *Table[T, In]) Delete(ctx context.Context, id string) error {
	if !matchable(id) {
		return nil
	}
	_, err := t.db.Exec(ctx, t.q.delete, id)
	return err
}

func personValues(in model.PersonInput) []any {
	return []any{in.Fname, in.Lname}
}

func NewCustomerStore(db DBTX) *Table[model.Customer, model.PersonInput] {
	return &Table[model.Customer, model.PersonInput]{
		db: db,
		q: tableQueries{
			list:   `SELECT "CustID", "CustFname", "CustLname" FROM "Customer" ORDER BY "CustID" DESC`,
			search: `SELECT "CustID", "CustFname", "CustLname" FROM "Customer" WHERE "CustFname" ILIKE $1 OR "CustLname" ILIKE $1 ORDER BY "CustID" DESC`,
			get:    `SELECT "CustID", "CustFname", "CustLname" FROM "Customer" WHERE "CustID" = $1`,
			insert: `INSERT INTO "Customer" ("CustFname", "CustLname") VALUES ($1, $2) RETURNING "CustID"`,
			update: `UPDATE "Customer" SET "CustFname" = $1, "CustLname" = $2 WHERE "CustID" = $3`,
			delete: `DELETE FROM "Customer" WHERE "CustID" = $1`,
		},
		scan: func(row pgx.CollectableRow) (model.Customer, error) {
			var c model.Customer
			err := row.Scan(&c.CustID, &c.CustFname, &c.CustLname)
			return c, err
		},
		values: personValues,
	}
}

func NewCashierStore(db DBTX) *Table[model.Cashier, model.PersonInput] {
	return &Table[model.Cashier, model.PersonInput]{
		db: db,
		q: tableQueries{
			list:   `SELECT "CashierId", "CashierFname", "CashierLname" FROM "Cashier" ORDER BY "CashierId" DESC`,
			search: `SELECT "CashierId", "CashierFname", "CashierLname" FROM "Cashier" WHERE "CashierFname" ILIKE $1 OR "CashierLname" ILIKE $1 ORDER BY "CashierId" DESC`,
			get:    `SELECT "CashierId", "CashierFname", "CashierLname" FROM "Cashier" WHERE "CashierId" = $1`,
			insert: `INSERT INTO "Cashier" ("CashierFname", "CashierLname") VALUES ($1, $2) RETURNING "CashierId"`,
			update: `UPDATE "Cashier" SET "CashierFname" = $1, "CashierLname" = $2 WHERE "CashierId" = $3`,
			delete: `DELETE FROM "Cashier" WHERE "CashierId" = $1`,
		},
		scan: func(row pgx.CollectableRow) (model.Cashier, error) {
			var c model.Cashier
			err := row.Scan(&c.CashierID, &c.CashierFname, &c.CashierLname)
			return c, err
		},
		values: personValues,
	}
}

func NewSupplierStore(db DBTX) *Table[model.Supplier, model.SupplierInput] {
	return &Table[model.Supplier, model.SupplierInput]{
		db: db,
		q: tableQueries{
			list:   `SELECT "SupplierId", "SupplierDEC" FROM "Supplier" ORDER BY "SupplierId" DESC`,
			search: `SELECT "SupplierId", "SupplierDEC" FROM "Supplier" WHERE "SupplierDEC" ILIKE $1 ORDER BY "SupplierId" DESC`,
			get:    `SELECT "SupplierId", "SupplierDEC" FROM "Supplier" WHERE "SupplierId" = $1`,
			insert: `INSERT INTO "Supplier" ("SupplierDEC") VALUES ($1) RETURNING "SupplierId"`,
			update: `UPDATE "Supplier" SET "SupplierDEC" = $1 WHERE "SupplierId" = $2`,
			delete: `DELETE FROM "Supplier" WHERE "SupplierId" = $1`,
		},
		scan: func(row pgx.CollectableRow) (model.Supplier, error) {
			var s model.Supplier
			err := row.Scan(&s.SupplierID, &s.Description)
			return s, err
		},
		values: func(in model.SupplierInput) []any {
			return []any{in.Name}
		},
	}
}
