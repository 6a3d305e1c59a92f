// Code generated by BobGen psql v0.42.0. DO NOT EDIT.
// This file is meant to be re-generated in place and/or deleted at any time.

package models

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/bob/expr"
	"github.com/stephenafamo/bob/mods"
	"github.com/stephenafamo/bob/orm"
	"github.com/stephenafamo/bob/types/pgtypes"
)

// Category is an object representing the database table.
type Category struct {
	ID        uuid.UUID `db:"id,pk" `
	Name      string    `db:"name" `
	Color     string    `db:"color" `
	CreatedAt time.Time `db:"created_at" `

	R categoryR `db:"-" `
}

// CategorySlice is an alias for a slice of pointers to Category.
// This should almost always be used instead of []*Category.
type CategorySlice []*Category

// Categories contains methods to work with the categories table
var Categories = psql.NewTablex[*Category, CategorySlice, *CategorySetter]("", "categories", buildCategoryColumns("categories"))

// CategoriesQuery is a query on the categories table
type CategoriesQuery = *psql.ViewQuery[*Category, CategorySlice]

// categoryR is where relationships are stored.
type categoryR struct {
	Transactions TransactionSlice // transactions.transactions_category_id_fkey
}

func buildCategoryColumns(alias string) categoryColumns {
	return categoryColumns{
		ColumnsExpr: expr.NewColumnsExpr(
			"id", "name", "color", "created_at",
		).WithParent("categories"),
		tableAlias: alias,
		ID:         psql.Quote(alias, "id"),
		Name:       psql.Quote(alias, "name"),
		Color:      psql.Quote(alias, "color"),
		CreatedAt:  psql.Quote(alias, "created_at"),
	}
}

type categoryColumns struct {
	expr.ColumnsExpr
	tableAlias string
	ID         psql.Expression
	Name       psql.Expression
	Color      psql.Expression
	CreatedAt  psql.Expression
}

func (c categoryColumns) Alias() string {
	return c.tableAlias
}

func (categoryColumns) AliasedAs(alias string) categoryColumns {
	return buildCategoryColumns(alias)
}

// CategorySetter is used for insert/upsert/update operations
// All values are optional, and do not have to be set
// Generated columns are not included
type CategorySetter struct {
	ID        omit.Val[uuid.UUID] `db:"id,pk" `
	Name      omit.Val[string]    `db:"name" `
	Color     omit.Val[string]    `db:"color" `
	CreatedAt omit.Val[time.Time] `db:"created_at" `
}

func (s CategorySetter) SetColumns() []string {
	vals := make([]string, 0, 4)
	if s.ID.IsValue() {
		vals = append(vals, "id")
	}
	if s.Name.IsValue() {
		vals = append(vals, "name")
	}
	if s.Color.IsValue() {
		vals = append(vals, "color")
	}
	if s.CreatedAt.IsValue() {
		vals = append(vals, "created_at")
	}
	return vals
}

func (s CategorySetter) Overwrite(t *Category) {
	if s.ID.IsValue() {
		t.ID = s.ID.MustGet()
	}
	if s.Name.IsValue() {
		t.Name = s.Name.MustGet()
	}
	if s.Color.IsValue() {
		t.Color = s.Color.MustGet()
	}
	if s.CreatedAt.IsValue() {
		t.CreatedAt = s.CreatedAt.MustGet()
	}
}

func (s *CategorySetter) Apply(q *dialect.InsertQuery) {
	q.AppendHooks(func(ctx context.Context, exec bob.Executor) (context.Context, error) {
		return Categories.BeforeInsertHooks.RunHooks(ctx, exec, s)
	})

	q.AppendValues(bob.ExpressionFunc(func(ctx context.Context, w io.StringWriter, d bob.Dialect, start int) ([]any, error) {
		vals := make([]bob.Expression, 4)
		if s.ID.IsValue() {
			vals[0] = psql.Arg(s.ID.MustGet())
		} else {
			vals[0] = psql.Raw("DEFAULT")
		}

		if s.Name.IsValue() {
			vals[1] = psql.Arg(s.Name.MustGet())
		} else {
			vals[1] = psql.Raw("DEFAULT")
		}

		if s.Color.IsValue() {
			vals[2] = psql.Arg(s.Color.MustGet())
		} else {
			vals[2] = psql.Raw("DEFAULT")
		}

		if s.CreatedAt.IsValue() {
			vals[3] = psql.Arg(s.CreatedAt.MustGet())
		} else {
			vals[3] = psql.Raw("DEFAULT")
		}

		return bob.ExpressSlice(ctx, w, d, start, vals, "", ", ", "")
	}))
}

func (s CategorySetter) UpdateMod() bob.Mod[*dialect.UpdateQuery] {
	return um.Set(s.Expressions()...)
}

func (s CategorySetter) Expressions(prefix ...string) []bob.Expression {
	exprs := make([]bob.Expression, 0, 4)

	if s.ID.IsValue() {
		exprs = append(exprs, expr.Join{Sep: " = ", Exprs: []bob.Expression{
			psql.Quote(append(prefix, "id")...),
			psql.Arg(s.ID),
		}})
	}

	if s.Name.IsValue() {
		exprs = append(exprs, expr.Join{Sep: " = ", Exprs: []bob.Expression{
			psql.Quote(append(prefix, "name")...),
			psql.Arg(s.Name),
		}})
	}

	if s.Color.IsValue() {
		exprs = append(exprs, expr.Join{Sep: " = ", Exprs: []bob.Expression{
			psql.Quote(append(prefix, "color")...),
			psql.Arg(s.Color),
		}})
	}

	if s.CreatedAt.IsValue() {
		exprs = append(exprs, expr.Join{Sep: " = ", Exprs: []bob.Expression{
			psql.Quote(append(prefix, "created_at")...),
			psql.Arg(s.CreatedAt),
		}})
	}

	return exprs
}

// FindCategory retrieves a single record by primary key
// If cols is empty Find will return all columns.
func FindCategory(ctx context.Context, exec bob.Executor, IDPK uuid.UUID, cols ...string) (*Category, error) {
	if len(cols) == 0 {
		return Categories.Query(
			sm.Where(Categories.Columns.ID.EQ(psql.Arg(IDPK))),
		).One(ctx, exec)
	}

	return Categories.Query(
		sm.Where(Categories.Columns.ID.EQ(psql.Arg(IDPK))),
		sm.Columns(Categories.Columns.Only(cols...)),
	).One(ctx, exec)
}

// CategoryExists checks the presence of a single record by primary key
func CategoryExists(ctx context.Context, exec bob.Executor, IDPK uuid.UUID) (bool, error) {
	return Categories.Query(
		sm.Where(Categories.Columns.ID.EQ(psql.Arg(IDPK))),
	).Exists(ctx, exec)
}

// AfterQueryHook is called after Category is retrieved from the database
func (o *Category) AfterQueryHook(ctx context.Context, exec bob.Executor, queryType bob.QueryType) error {
	var err error

	switch queryType {
	case bob.QueryTypeSelect:
		ctx, err = Categories.AfterSelectHooks.RunHooks(ctx, exec, CategorySlice{o})
	case bob.QueryTypeInsert:
		ctx, err = Categories.AfterInsertHooks.RunHooks(ctx, exec, CategorySlice{o})
	case bob.QueryTypeUpdate:
		ctx, err = Categories.AfterUpdateHooks.RunHooks(ctx, exec, CategorySlice{o})
	case bob.QueryTypeDelete:
		ctx, err = Categories.AfterDeleteHooks.RunHooks(ctx, exec, CategorySlice{o})
	}

	return err
}

// primaryKeyVals returns the primary key values of the Category
func (o *Category) primaryKeyVals() bob.Expression {
	return psql.Arg(o.ID)
}

func (o *Category) pkEQ() dialect.Expression {
	return psql.Quote("categories", "id").EQ(bob.ExpressionFunc(func(ctx context.Context, w io.StringWriter, d bob.Dialect, start int) ([]any, error) {
		return o.primaryKeyVals().WriteSQL(ctx, w, d, start)
	}))
}

// Update uses an executor to update the Category
func (o *Category) Update(ctx context.Context, exec bob.Executor, s *CategorySetter) error {
	v, err := Categories.Update(s.UpdateMod(), um.Where(o.pkEQ())).One(ctx, exec)
	if err != nil {
		return err
	}

	o.R = v.R
	*o = *v

	return nil
}

// Delete deletes a single Category record with an executor
func (o *Category) Delete(ctx context.Context, exec bob.Executor) error {
	_, err := Categories.Delete(dm.Where(o.pkEQ())).Exec(ctx, exec)
	return err
}

// Reload refreshes the Category using the executor
func (o *Category) Reload(ctx context.Context, exec bob.Executor) error {
	o2, err := Categories.Query(
		sm.Where(Categories.Columns.ID.EQ(psql.Arg(o.ID))),
	).One(ctx, exec)
	if err != nil {
		return err
	}
	o2.R = o.R
	*o = *o2

	return nil
}

// AfterQueryHook is called after CategorySlice is retrieved from the database
func (o CategorySlice) AfterQueryHook(ctx context.Context, exec bob.Executor, queryType bob.QueryType) error {
	var err error

	switch queryType {
	case bob.QueryTypeSelect:
		ctx, err = Categories.AfterSelectHooks.RunHooks(ctx, exec, o)
	case bob.QueryTypeInsert:
		ctx, err = Categories.AfterInsertHooks.RunHooks(ctx, exec, o)
	case bob.QueryTypeUpdate:
		ctx, err = Categories.AfterUpdateHooks.RunHooks(ctx, exec, o)
	case bob.QueryTypeDelete:
		ctx, err = Categories.AfterDeleteHooks.RunHooks(ctx, exec, o)
	}

	return err
}

func (o CategorySlice) pkIN() dialect.Expression {
	if len(o) == 0 {
		return psql.Raw("NULL")
	}

	return psql.Quote("categories", "id").In(bob.ExpressionFunc(func(ctx context.Context, w io.StringWriter, d bob.Dialect, start int) ([]any, error) {
		pkPairs := make([]bob.Expression, len(o))
		for i, row := range o {
			pkPairs[i] = row.primaryKeyVals()
		}
		return bob.ExpressSlice(ctx, w, d, start, pkPairs, "", ", ", "")
	}))
}

// copyMatchingRows finds models in the given slice that have the same primary key
// then it first copies the existing relationships from the old model to the new model
// and then replaces the old model in the slice with the new model
func (o CategorySlice) copyMatchingRows(from ...*Category) {
	for i, old := range o {
		for _, new := range from {
			if new.ID != old.ID {
				continue
			}
			new.R = old.R
			o[i] = new
			break
		}
	}
}

// UpdateMod modifies an update query with "WHERE primary_key IN (o...)"
func (o CategorySlice) UpdateMod() bob.Mod[*dialect.UpdateQuery] {
	return bob.ModFunc[*dialect.UpdateQuery](func(q *dialect.UpdateQuery) {
		q.AppendHooks(func(ctx context.Context, exec bob.Executor) (context.Context, error) {
			return Categories.BeforeUpdateHooks.RunHooks(ctx, exec, o)
		})

		q.AppendLoader(bob.LoaderFunc(func(ctx context.Context, exec bob.Executor, retrieved any) error {
			var err error
			switch retrieved := retrieved.(type) {
			case *Category:
				o.copyMatchingRows(retrieved)
			case []*Category:
				o.copyMatchingRows(retrieved...)
			case CategorySlice:
				o.copyMatchingRows(retrieved...)
			default:
				// If the retrieved value is not a Category or a slice of Category
				// then run the AfterUpdateHooks on the slice
				_, err = Categories.AfterUpdateHooks.RunHooks(ctx, exec, o)
			}

			return err
		}))

		q.AppendWhere(o.pkIN())
	})
}

// DeleteMod modifies an delete query with "WHERE primary_key IN (o...)"
func (o CategorySlice) DeleteMod() bob.Mod[*dialect.DeleteQuery] {
	return bob.ModFunc[*dialect.DeleteQuery](func(q *dialect.DeleteQuery) {
		q.AppendHooks(func(ctx context.Context, exec bob.Executor) (context.Context, error) {
			return Categories.BeforeDeleteHooks.RunHooks(ctx, exec, o)
		})

		q.AppendLoader(bob.LoaderFunc(func(ctx context.Context, exec bob.Executor, retrieved any) error {
			var err error
			switch retrieved := retrieved.(type) {
			case *Category:
				o.copyMatchingRows(retrieved)
			case []*Category:
				o.copyMatchingRows(retrieved...)
			case CategorySlice:
				o.copyMatchingRows(retrieved...)
			default:
				// If the retrieved value is not a Category or a slice of Category
				// then run the AfterDeleteHooks on the slice
				_, err = Categories.AfterDeleteHooks.RunHooks(ctx, exec, o)
			}

			return err
		}))

		q.AppendWhere(o.pkIN())
	})
}

func (o CategorySlice) UpdateAll(ctx context.Context, exec bob.Executor, vals CategorySetter) error {
	if len(o) == 0 {
		return nil
	}

	_, err := Categories.Update(vals.UpdateMod(), o.UpdateMod()).All(ctx, exec)
	return err
}

func (o CategorySlice) DeleteAll(ctx context.Context, exec bob.Executor) error {
	if len(o) == 0 {
		return nil
	}

	_, err := Categories.Delete(o.DeleteMod()).Exec(ctx, exec)
	return err
}

func (o CategorySlice) ReloadAll(ctx context.Context, exec bob.Executor) error {
	if len(o) == 0 {
		return nil
	}

	o2, err := Categories.Query(sm.Where(o.pkIN())).All(ctx, exec)
	if err != nil {
		return err
	}

	o.copyMatchingRows(o2...)

	return nil
}

// Transactions starts a query for related objects on transactions
func (o *Category) Transactions(mods ...bob.Mod[*dialect.SelectQuery]) TransactionsQuery {
	return Transactions.Query(append(mods,
		sm.Where(Transactions.Columns.CategoryID.EQ(psql.Arg(o.ID))),
	)...)
}

func (os CategorySlice) Transactions(mods ...bob.Mod[*dialect.SelectQuery]) TransactionsQuery {
	pkID := make(pgtypes.Array[uuid.UUID], 0, len(os))
	for _, o := range os {
		if o == nil {
			continue
		}
		pkID = append(pkID, o.ID)
	}
	PKArgExpr := psql.Select(sm.Columns(
		psql.F("unnest", psql.Cast(psql.Arg(pkID), "uuid[]")),
	))

	return Transactions.Query(append(mods,
		sm.Where(psql.Group(Transactions.Columns.CategoryID).OP("IN", PKArgExpr)),
	)...)
}

func insertCategoryTransactions0(ctx context.Context, exec bob.Executor, transactions1 []*TransactionSetter, category0 *Category) (TransactionSlice, error) {
	for i := range transactions1 {
		transactions1[i].CategoryID = omit.From(category0.ID)
	}

	ret, err := Transactions.Insert(bob.ToMods(transactions1...)).All(ctx, exec)
	if err != nil {
		return ret, fmt.Errorf("insertCategoryTransactions0: %w", err)
	}

	return ret, nil
}

func attachCategoryTransactions0(ctx context.Context, exec bob.Executor, count int, transactions1 TransactionSlice, category0 *Category) (TransactionSlice, error) {
	setter := &TransactionSetter{
		CategoryID: omit.From(category0.ID),
	}

	err := transactions1.UpdateAll(ctx, exec, *setter)
	if err != nil {
		return nil, fmt.Errorf("attachCategoryTransactions0: %w", err)
	}

	return transactions1, nil
}

func (category0 *Category) InsertTransactions(ctx context.Context, exec bob.Executor, related ...*TransactionSetter) error {
	if len(related) == 0 {
		return nil
	}

	var err error

	transactions1, err := insertCategoryTransactions0(ctx, exec, related, category0)
	if err != nil {
		return err
	}

	category0.R.Transactions = append(category0.R.Transactions, transactions1...)

	for _, rel := range transactions1 {
		rel.R.Category = category0
	}
	return nil
}

func (category0 *Category) AttachTransactions(ctx context.Context, exec bob.Executor, related ...*Transaction) error {
	if len(related) == 0 {
		return nil
	}

	var err error
	transactions1 := TransactionSlice(related)

	_, err = attachCategoryTransactions0(ctx, exec, len(related), transactions1, category0)
	if err != nil {
		return err
	}

	category0.R.Transactions = append(category0.R.Transactions, transactions1...)

	for _, rel := range related {
		rel.R.Category = category0
	}

	return nil
}

type categoryWhere[Q psql.Filterable] struct {
	ID        psql.WhereMod[Q, uuid.UUID]
	Name      psql.WhereMod[Q, string]
	Color     psql.WhereMod[Q, string]
	CreatedAt psql.WhereMod[Q, time.Time]
}

func (categoryWhere[Q]) AliasedAs(alias string) categoryWhere[Q] {
	return buildCategoryWhere[Q](buildCategoryColumns(alias))
}

func buildCategoryWhere[Q psql.Filterable](cols categoryColumns) categoryWhere[Q] {
	return categoryWhere[Q]{
		ID:        psql.Where[Q, uuid.UUID](cols.ID),
		Name:      psql.Where[Q, string](cols.Name),
		Color:     psql.Where[Q, string](cols.Color),
		CreatedAt: psql.Where[Q, time.Time](cols.CreatedAt),
	}
}

func (o *Category) Preload(name string, retrieved any) error {
	if o == nil {
		return nil
	}

	switch name {
	case "Transactions":
		rels, ok := retrieved.(TransactionSlice)
		if !ok {
			return fmt.Errorf("category cannot load %T as %q", retrieved, name)
		}

		o.R.Transactions = rels

		for _, rel := range rels {
			if rel != nil {
				rel.R.Category = o
			}
		}
		return nil
	default:
		return fmt.Errorf("category has no relationship %q", name)
	}
}

type categoryPreloader struct{}

func buildCategoryPreloader() categoryPreloader {
	return categoryPreloader{}
}

type categoryThenLoader[Q orm.Loadable] struct {
	Transactions func(...bob.Mod[*dialect.SelectQuery]) orm.Loader[Q]
}

func buildCategoryThenLoader[Q orm.Loadable]() categoryThenLoader[Q] {
	type TransactionsLoadInterface interface {
		LoadTransactions(context.Context, bob.Executor, ...bob.Mod[*dialect.SelectQuery]) error
	}

	return categoryThenLoader[Q]{
		Transactions: thenLoadBuilder[Q](
			"Transactions",
			func(ctx context.Context, exec bob.Executor, retrieved TransactionsLoadInterface, mods ...bob.Mod[*dialect.SelectQuery]) error {
				return retrieved.LoadTransactions(ctx, exec, mods...)
			},
		),
	}
}

// LoadTransactions loads the category's Transactions into the .R struct
func (o *Category) LoadTransactions(ctx context.Context, exec bob.Executor, mods ...bob.Mod[*dialect.SelectQuery]) error {
	if o == nil {
		return nil
	}

	// Reset the relationship
	o.R.Transactions = nil

	related, err := o.Transactions(mods...).All(ctx, exec)
	if err != nil {
		return err
	}

	for _, rel := range related {
		rel.R.Category = o
	}

	o.R.Transactions = related
	return nil
}

// LoadTransactions loads the category's Transactions into the .R struct
func (os CategorySlice) LoadTransactions(ctx context.Context, exec bob.Executor, mods ...bob.Mod[*dialect.SelectQuery]) error {
	if len(os) == 0 {
		return nil
	}

	transactions, err := os.Transactions(mods...).All(ctx, exec)
	if err != nil {
		return err
	}

	for _, o := range os {
		if o == nil {
			continue
		}

		o.R.Transactions = nil
	}

	for _, o := range os {
		if o == nil {
			continue
		}

		for _, rel := range transactions {

			if !(o.ID == rel.CategoryID) {
				continue
			}

			rel.R.Category = o

			o.R.Transactions = append(o.R.Transactions, rel)
		}
	}

	return nil
}

type categoryJoins[Q dialect.Joinable] struct {
	typ          string
	Transactions modAs[Q, transactionColumns]
}

func (j categoryJoins[Q]) aliasedAs(alias string) categoryJoins[Q] {
	return buildCategoryJoins[Q](buildCategoryColumns(alias), j.typ)
}

func buildCategoryJoins[Q dialect.Joinable](cols categoryColumns, typ string) categoryJoins[Q] {
	return categoryJoins[Q]{
		typ: typ,
		Transactions: modAs[Q, transactionColumns]{
			c: Transactions.Columns,
			f: func(to transactionColumns) bob.Mod[Q] {
				mods := make(mods.QueryMods[Q], 0, 1)

				{
					mods = append(mods, dialect.Join[Q](typ, Transactions.Name().As(to.Alias())).On(
						to.CategoryID.EQ(cols.ID),
					))
				}

				return mods
			},
		},
	}
}
