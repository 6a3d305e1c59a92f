// Code generated by BobGen psql v0.42.0. DO NOT EDIT.
// This file is meant to be re-generated in place and/or deleted at any time.

package factory

import (
	"context"
	"testing"
	"time"

	"github.com/aarondl/opt/omit"
	models "github.com/carson-networks/report-server/internal/storage/sqlconfig/bobgen/models"
	"github.com/gofrs/uuid/v5"
	"github.com/jaswdr/faker/v2"
	"github.com/stephenafamo/bob"
)

type CategoryMod interface {
	Apply(context.Context, *CategoryTemplate)
}

type CategoryModFunc func(context.Context, *CategoryTemplate)

func (f CategoryModFunc) Apply(ctx context.Context, n *CategoryTemplate) {
	f(ctx, n)
}

type CategoryModSlice []CategoryMod

func (mods CategoryModSlice) Apply(ctx context.Context, n *CategoryTemplate) {
	for _, f := range mods {
		f.Apply(ctx, n)
	}
}

// CategoryTemplate is an object representing the database table.
// all columns are optional and should be set by mods
type CategoryTemplate struct {
	ID        func() uuid.UUID
	Name      func() string
	Color     func() string
	CreatedAt func() time.Time

	r categoryR
	f *Factory

	alreadyPersisted bool
}

type categoryR struct {
	Transactions []*categoryRTransactionsR
}

type categoryRTransactionsR struct {
	number int
	o      *TransactionTemplate
}

// Apply mods to the CategoryTemplate
func (o *CategoryTemplate) Apply(ctx context.Context, mods ...CategoryMod) {
	for _, mod := range mods {
		mod.Apply(ctx, o)
	}
}

// setModelRels creates and sets the relationships on *models.Category
// according to the relationships in the template. Nothing is inserted into the db
func (t CategoryTemplate) setModelRels(o *models.Category) {
	if t.r.Transactions != nil {
		rel := models.TransactionSlice{}
		for _, r := range t.r.Transactions {
			related := r.o.BuildMany(r.number)
			for _, rel := range related {
				rel.CategoryID = o.ID // h2
				rel.R.Category = o
			}
			rel = append(rel, related...)
		}
		o.R.Transactions = rel
	}
}

// BuildSetter returns an *models.CategorySetter
// this does nothing with the relationship templates
func (o CategoryTemplate) BuildSetter() *models.CategorySetter {
	m := &models.CategorySetter{}

	if o.ID != nil {
		val := o.ID()
		m.ID = omit.From(val)
	}
	if o.Name != nil {
		val := o.Name()
		m.Name = omit.From(val)
	}
	if o.Color != nil {
		val := o.Color()
		m.Color = omit.From(val)
	}
	if o.CreatedAt != nil {
		val := o.CreatedAt()
		m.CreatedAt = omit.From(val)
	}

	return m
}

// BuildManySetter returns an []*models.CategorySetter
// this does nothing with the relationship templates
func (o CategoryTemplate) BuildManySetter(number int) []*models.CategorySetter {
	m := make([]*models.CategorySetter, number)

	for i := range m {
		m[i] = o.BuildSetter()
	}

	return m
}

// Build returns an *models.Category
// Related objects are also created and placed in the .R field
// NOTE: Objects are not inserted into the database. Use CategoryTemplate.Create
func (o CategoryTemplate) Build() *models.Category {
	m := &models.Category{}

	if o.ID != nil {
		m.ID = o.ID()
	}
	if o.Name != nil {
		m.Name = o.Name()
	}
	if o.Color != nil {
		m.Color = o.Color()
	}
	if o.CreatedAt != nil {
		m.CreatedAt = o.CreatedAt()
	}

	o.setModelRels(m)

	return m
}

// BuildMany returns an models.CategorySlice
// Related objects are also created and placed in the .R field
// NOTE: Objects are not inserted into the database. Use CategoryTemplate.CreateMany
func (o CategoryTemplate) BuildMany(number int) models.CategorySlice {
	m := make(models.CategorySlice, number)

	for i := range m {
		m[i] = o.Build()
	}

	return m
}

func ensureCreatableCategory(m *models.CategorySetter) {
	if !(m.Name.IsValue()) {
		val := random_string(nil)
		m.Name = omit.From(val)
	}
}

// insertOptRels creates and inserts any optional the relationships on *models.Category
// according to the relationships in the template.
// any required relationship should have already exist on the model
func (o *CategoryTemplate) insertOptRels(ctx context.Context, exec bob.Executor, m *models.Category) error {
	var err error

	isTransactionsDone, _ := categoryRelTransactionsCtx.Value(ctx)
	if !isTransactionsDone && o.r.Transactions != nil {
		ctx = categoryRelTransactionsCtx.WithValue(ctx, true)
		for _, r := range o.r.Transactions {
			if r.o.alreadyPersisted {
				m.R.Transactions = append(m.R.Transactions, r.o.Build())
			} else {
				rel0, err := r.o.CreateMany(ctx, exec, r.number)
				if err != nil {
					return err
				}

				err = m.AttachTransactions(ctx, exec, rel0...)
				if err != nil {
					return err
				}
			}
		}
	}

	return err
}

// Create builds a category and inserts it into the database
// Relations objects are also inserted and placed in the .R field
func (o *CategoryTemplate) Create(ctx context.Context, exec bob.Executor) (*models.Category, error) {
	var err error
	opt := o.BuildSetter()
	ensureCreatableCategory(opt)

	m, err := models.Categories.Insert(opt).One(ctx, exec)
	if err != nil {
		return nil, err
	}

	if err := o.insertOptRels(ctx, exec, m); err != nil {
		return nil, err
	}
	return m, err
}

// MustCreate builds a category and inserts it into the database
// Relations objects are also inserted and placed in the .R field
// panics if an error occurs
func (o *CategoryTemplate) MustCreate(ctx context.Context, exec bob.Executor) *models.Category {
	m, err := o.Create(ctx, exec)
	if err != nil {
		panic(err)
	}
	return m
}

// CreateOrFail builds a category and inserts it into the database
// Relations objects are also inserted and placed in the .R field
// It calls `tb.Fatal(err)` on the test/benchmark if an error occurs
func (o *CategoryTemplate) CreateOrFail(ctx context.Context, tb testing.TB, exec bob.Executor) *models.Category {
	tb.Helper()
	m, err := o.Create(ctx, exec)
	if err != nil {
		tb.Fatal(err)
		return nil
	}
	return m
}

// CreateMany builds multiple categories and inserts them into the database
// Relations objects are also inserted and placed in the .R field
func (o CategoryTemplate) CreateMany(ctx context.Context, exec bob.Executor, number int) (models.CategorySlice, error) {
	var err error
	m := make(models.CategorySlice, number)

	for i := range m {
		m[i], err = o.Create(ctx, exec)
		if err != nil {
			return nil, err
		}
	}

	return m, nil
}

// MustCreateMany builds multiple categories and inserts them into the database
// Relations objects are also inserted and placed in the .R field
// panics if an error occurs
func (o CategoryTemplate) MustCreateMany(ctx context.Context, exec bob.Executor, number int) models.CategorySlice {
	m, err := o.CreateMany(ctx, exec, number)
	if err != nil {
		panic(err)
	}
	return m
}

// CreateManyOrFail builds multiple categories and inserts them into the database
// Relations objects are also inserted and placed in the .R field
// It calls `tb.Fatal(err)` on the test/benchmark if an error occurs
func (o CategoryTemplate) CreateManyOrFail(ctx context.Context, tb testing.TB, exec bob.Executor, number int) models.CategorySlice {
	tb.Helper()
	m, err := o.CreateMany(ctx, exec, number)
	if err != nil {
		tb.Fatal(err)
		return nil
	}
	return m
}

// Category has methods that act as mods for the CategoryTemplate
var CategoryMods categoryMods

type categoryMods struct{}

func (m categoryMods) RandomizeAllColumns(f *faker.Faker) CategoryMod {
	return CategoryModSlice{
		CategoryMods.RandomID(f),
		CategoryMods.RandomName(f),
		CategoryMods.RandomColor(f),
		CategoryMods.RandomCreatedAt(f),
	}
}

// Set the model columns to this value
func (m categoryMods) ID(val uuid.UUID) CategoryMod {
	return CategoryModFunc(func(_ context.Context, o *CategoryTemplate) {
		o.ID = func() uuid.UUID { return val }
	})
}

// Set the Column from the function
func (m categoryMods) IDFunc(f func() uuid.UUID) CategoryMod {
	return CategoryModFunc(func(_ context.Context, o *CategoryTemplate) {
		o.ID = f
	})
}

// Clear any values for the column
func (m categoryMods) UnsetID() CategoryMod {
	return CategoryModFunc(func(_ context.Context, o *CategoryTemplate) {
		o.ID = nil
	})
}

// Generates a random value for the column using the given faker
// if faker is nil, a default faker is used
func (m categoryMods) RandomID(f *faker.Faker) CategoryMod {
	return CategoryModFunc(func(_ context.Context, o *CategoryTemplate) {
		o.ID = func() uuid.UUID {
			return random_uuid_UUID(f)
		}
	})
}

// Set the model columns to this value
func (m categoryMods) Name(val string) CategoryMod {
	return CategoryModFunc(func(_ context.Context, o *CategoryTemplate) {
		o.Name = func() string { return val }
	})
}

// Set the Column from the function
func (m categoryMods) NameFunc(f func() string) CategoryMod {
	return CategoryModFunc(func(_ context.Context, o *CategoryTemplate) {
		o.Name = f
	})
}

// Clear any values for the column
func (m categoryMods) UnsetName() CategoryMod {
	return CategoryModFunc(func(_ context.Context, o *CategoryTemplate) {
		o.Name = nil
	})
}

// Generates a random value for the column using the given faker
// if faker is nil, a default faker is used
func (m categoryMods) RandomName(f *faker.Faker) CategoryMod {
	return CategoryModFunc(func(_ context.Context, o *CategoryTemplate) {
		o.Name = func() string {
			return random_string(f)
		}
	})
}

// Set the model columns to this value
func (m categoryMods) Color(val string) CategoryMod {
	return CategoryModFunc(func(_ context.Context, o *CategoryTemplate) {
		o.Color = func() string { return val }
	})
}

// Set the Column from the function
func (m categoryMods) ColorFunc(f func() string) CategoryMod {
	return CategoryModFunc(func(_ context.Context, o *CategoryTemplate) {
		o.Color = f
	})
}

// Clear any values for the column
func (m categoryMods) UnsetColor() CategoryMod {
	return CategoryModFunc(func(_ context.Context, o *CategoryTemplate) {
		o.Color = nil
	})
}

// Generates a random value for the column using the given faker
// if faker is nil, a default faker is used
func (m categoryMods) RandomColor(f *faker.Faker) CategoryMod {
	return CategoryModFunc(func(_ context.Context, o *CategoryTemplate) {
		o.Color = func() string {
			return random_string(f)
		}
	})
}

// Set the model columns to this value
func (m categoryMods) CreatedAt(val time.Time) CategoryMod {
	return CategoryModFunc(func(_ context.Context, o *CategoryTemplate) {
		o.CreatedAt = func() time.Time { return val }
	})
}

// Set the Column from the function
func (m categoryMods) CreatedAtFunc(f func() time.Time) CategoryMod {
	return CategoryModFunc(func(_ context.Context, o *CategoryTemplate) {
		o.CreatedAt = f
	})
}

// Clear any values for the column
func (m categoryMods) UnsetCreatedAt() CategoryMod {
	return CategoryModFunc(func(_ context.Context, o *CategoryTemplate) {
		o.CreatedAt = nil
	})
}

// Generates a random value for the column using the given faker
// if faker is nil, a default faker is used
func (m categoryMods) RandomCreatedAt(f *faker.Faker) CategoryMod {
	return CategoryModFunc(func(_ context.Context, o *CategoryTemplate) {
		o.CreatedAt = func() time.Time {
			return random_time_Time(f)
		}
	})
}

func (m categoryMods) WithParentsCascading() CategoryMod {
	return CategoryModFunc(func(ctx context.Context, o *CategoryTemplate) {
		if isDone, _ := categoryWithParentsCascadingCtx.Value(ctx); isDone {
			return
		}
		ctx = categoryWithParentsCascadingCtx.WithValue(ctx, true)
	})
}

func (m categoryMods) WithTransactions(number int, related *TransactionTemplate) CategoryMod {
	return CategoryModFunc(func(ctx context.Context, o *CategoryTemplate) {
		o.r.Transactions = []*categoryRTransactionsR{{
			number: number,
			o:      related,
		}}
	})
}

func (m categoryMods) WithNewTransactions(number int, mods ...TransactionMod) CategoryMod {
	return CategoryModFunc(func(ctx context.Context, o *CategoryTemplate) {
		related := o.f.NewTransactionWithContext(ctx, mods...)
		m.WithTransactions(number, related).Apply(ctx, o)
	})
}

func (m categoryMods) AddTransactions(number int, related *TransactionTemplate) CategoryMod {
	return CategoryModFunc(func(ctx context.Context, o *CategoryTemplate) {
		o.r.Transactions = append(o.r.Transactions, &categoryRTransactionsR{
			number: number,
			o:      related,
		})
	})
}

func (m categoryMods) AddNewTransactions(number int, mods ...TransactionMod) CategoryMod {
	return CategoryModFunc(func(ctx context.Context, o *CategoryTemplate) {
		related := o.f.NewTransactionWithContext(ctx, mods...)
		m.AddTransactions(number, related).Apply(ctx, o)
	})
}

func (m categoryMods) AddExistingTransactions(existingModels ...*models.Transaction) CategoryMod {
	return CategoryModFunc(func(ctx context.Context, o *CategoryTemplate) {
		for _, em := range existingModels {
			o.r.Transactions = append(o.r.Transactions, &categoryRTransactionsR{
				o: o.f.FromExistingTransaction(em),
			})
		}
	})
}

func (m categoryMods) WithoutTransactions() CategoryMod {
	return CategoryModFunc(func(ctx context.Context, o *CategoryTemplate) {
		o.r.Transactions = nil
	})
}
