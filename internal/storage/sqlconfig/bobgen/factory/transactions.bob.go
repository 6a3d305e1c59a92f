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
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
)

type TransactionMod interface {
	Apply(context.Context, *TransactionTemplate)
}

type TransactionModFunc func(context.Context, *TransactionTemplate)

func (f TransactionModFunc) Apply(ctx context.Context, n *TransactionTemplate) {
	f(ctx, n)
}

type TransactionModSlice []TransactionMod

func (mods TransactionModSlice) Apply(ctx context.Context, n *TransactionTemplate) {
	for _, f := range mods {
		f.Apply(ctx, n)
	}
}

// TransactionTemplate is an object representing the database table.
// all columns are optional and should be set by mods
type TransactionTemplate struct {
	ID              func() uuid.UUID
	AccountID       func() uuid.UUID
	CategoryID      func() uuid.UUID
	Amount          func() decimal.Decimal
	TransactionName func() string
	TransactionDate func() time.Time
	CreatedAt       func() time.Time

	r transactionR
	f *Factory

	alreadyPersisted bool
}

type transactionR struct {
	Account  *transactionRAccountR
	Category *transactionRCategoryR
}

type transactionRAccountR struct {
	o *AccountTemplate
}
type transactionRCategoryR struct {
	o *CategoryTemplate
}

// Apply mods to the TransactionTemplate
func (o *TransactionTemplate) Apply(ctx context.Context, mods ...TransactionMod) {
	for _, mod := range mods {
		mod.Apply(ctx, o)
	}
}

// setModelRels creates and sets the relationships on *models.Transaction
// according to the relationships in the template. Nothing is inserted into the db
func (t TransactionTemplate) setModelRels(o *models.Transaction) {
	if t.r.Account != nil {
		rel := t.r.Account.o.Build()
		rel.R.Transactions = append(rel.R.Transactions, o)
		o.AccountID = rel.ID // h2
		o.R.Account = rel
	}

	if t.r.Category != nil {
		rel := t.r.Category.o.Build()
		rel.R.Transactions = append(rel.R.Transactions, o)
		o.CategoryID = rel.ID // h2
		o.R.Category = rel
	}
}

// BuildSetter returns an *models.TransactionSetter
// this does nothing with the relationship templates
func (o TransactionTemplate) BuildSetter() *models.TransactionSetter {
	m := &models.TransactionSetter{}

	if o.ID != nil {
		val := o.ID()
		m.ID = omit.From(val)
	}
	if o.AccountID != nil {
		val := o.AccountID()
		m.AccountID = omit.From(val)
	}
	if o.CategoryID != nil {
		val := o.CategoryID()
		m.CategoryID = omit.From(val)
	}
	if o.Amount != nil {
		val := o.Amount()
		m.Amount = omit.From(val)
	}
	if o.TransactionName != nil {
		val := o.TransactionName()
		m.TransactionName = omit.From(val)
	}
	if o.TransactionDate != nil {
		val := o.TransactionDate()
		m.TransactionDate = omit.From(val)
	}
	if o.CreatedAt != nil {
		val := o.CreatedAt()
		m.CreatedAt = omit.From(val)
	}

	return m
}

// BuildManySetter returns an []*models.TransactionSetter
// this does nothing with the relationship templates
func (o TransactionTemplate) BuildManySetter(number int) []*models.TransactionSetter {
	m := make([]*models.TransactionSetter, number)

	for i := range m {
		m[i] = o.BuildSetter()
	}

	return m
}

// Build returns an *models.Transaction
// Related objects are also created and placed in the .R field
// NOTE: Objects are not inserted into the database. Use TransactionTemplate.Create
func (o TransactionTemplate) Build() *models.Transaction {
	m := &models.Transaction{}

	if o.ID != nil {
		m.ID = o.ID()
	}
	if o.AccountID != nil {
		m.AccountID = o.AccountID()
	}
	if o.CategoryID != nil {
		m.CategoryID = o.CategoryID()
	}
	if o.Amount != nil {
		m.Amount = o.Amount()
	}
	if o.TransactionName != nil {
		m.TransactionName = o.TransactionName()
	}
	if o.TransactionDate != nil {
		m.TransactionDate = o.TransactionDate()
	}
	if o.CreatedAt != nil {
		m.CreatedAt = o.CreatedAt()
	}

	o.setModelRels(m)

	return m
}

// BuildMany returns an models.TransactionSlice
// Related objects are also created and placed in the .R field
// NOTE: Objects are not inserted into the database. Use TransactionTemplate.CreateMany
func (o TransactionTemplate) BuildMany(number int) models.TransactionSlice {
	m := make(models.TransactionSlice, number)

	for i := range m {
		m[i] = o.Build()
	}

	return m
}

func ensureCreatableTransaction(m *models.TransactionSetter) {
	if !(m.AccountID.IsValue()) {
		val := random_uuid_UUID(nil)
		m.AccountID = omit.From(val)
	}
	if !(m.CategoryID.IsValue()) {
		val := random_uuid_UUID(nil)
		m.CategoryID = omit.From(val)
	}
	if !(m.Amount.IsValue()) {
		val := random_decimal_Decimal(nil, "14", "2")
		m.Amount = omit.From(val)
	}
	if !(m.TransactionDate.IsValue()) {
		val := random_time_Time(nil)
		m.TransactionDate = omit.From(val)
	}
}

// insertOptRels creates and inserts any optional the relationships on *models.Transaction
// according to the relationships in the template.
// any required relationship should have already exist on the model
func (o *TransactionTemplate) insertOptRels(ctx context.Context, exec bob.Executor, m *models.Transaction) error {
	var err error

	return err
}

// Create builds a transaction and inserts it into the database
// Relations objects are also inserted and placed in the .R field
func (o *TransactionTemplate) Create(ctx context.Context, exec bob.Executor) (*models.Transaction, error) {
	var err error
	opt := o.BuildSetter()
	ensureCreatableTransaction(opt)

	if o.r.Account == nil {
		TransactionMods.WithNewAccount().Apply(ctx, o)
	}

	var rel0 *models.Account

	if o.r.Account.o.alreadyPersisted {
		rel0 = o.r.Account.o.Build()
	} else {
		rel0, err = o.r.Account.o.Create(ctx, exec)
		if err != nil {
			return nil, err
		}
	}

	opt.AccountID = omit.From(rel0.ID)

	if o.r.Category == nil {
		TransactionMods.WithNewCategory().Apply(ctx, o)
	}

	var rel1 *models.Category

	if o.r.Category.o.alreadyPersisted {
		rel1 = o.r.Category.o.Build()
	} else {
		rel1, err = o.r.Category.o.Create(ctx, exec)
		if err != nil {
			return nil, err
		}
	}

	opt.CategoryID = omit.From(rel1.ID)

	m, err := models.Transactions.Insert(opt).One(ctx, exec)
	if err != nil {
		return nil, err
	}

	m.R.Account = rel0
	m.R.Category = rel1

	if err := o.insertOptRels(ctx, exec, m); err != nil {
		return nil, err
	}
	return m, err
}

// MustCreate builds a transaction and inserts it into the database
// Relations objects are also inserted and placed in the .R field
// panics if an error occurs
func (o *TransactionTemplate) MustCreate(ctx context.Context, exec bob.Executor) *models.Transaction {
	m, err := o.Create(ctx, exec)
	if err != nil {
		panic(err)
	}
	return m
}

// CreateOrFail builds a transaction and inserts it into the database
// Relations objects are also inserted and placed in the .R field
// It calls `tb.Fatal(err)` on the test/benchmark if an error occurs
func (o *TransactionTemplate) CreateOrFail(ctx context.Context, tb testing.TB, exec bob.Executor) *models.Transaction {
	tb.Helper()
	m, err := o.Create(ctx, exec)
	if err != nil {
		tb.Fatal(err)
		return nil
	}
	return m
}

// CreateMany builds multiple transactions and inserts them into the database
// Relations objects are also inserted and placed in the .R field
func (o TransactionTemplate) CreateMany(ctx context.Context, exec bob.Executor, number int) (models.TransactionSlice, error) {
	var err error
	m := make(models.TransactionSlice, number)

	for i := range m {
		m[i], err = o.Create(ctx, exec)
		if err != nil {
			return nil, err
		}
	}

	return m, nil
}

// MustCreateMany builds multiple transactions and inserts them into the database
// Relations objects are also inserted and placed in the .R field
// panics if an error occurs
func (o TransactionTemplate) MustCreateMany(ctx context.Context, exec bob.Executor, number int) models.TransactionSlice {
	m, err := o.CreateMany(ctx, exec, number)
	if err != nil {
		panic(err)
	}
	return m
}

// CreateManyOrFail builds multiple transactions and inserts them into the database
// Relations objects are also inserted and placed in the .R field
// It calls `tb.Fatal(err)` on the test/benchmark if an error occurs
func (o TransactionTemplate) CreateManyOrFail(ctx context.Context, tb testing.TB, exec bob.Executor, number int) models.TransactionSlice {
	tb.Helper()
	m, err := o.CreateMany(ctx, exec, number)
	if err != nil {
		tb.Fatal(err)
		return nil
	}
	return m
}

// Transaction has methods that act as mods for the TransactionTemplate
var TransactionMods transactionMods

type transactionMods struct{}

func (m transactionMods) RandomizeAllColumns(f *faker.Faker) TransactionMod {
	return TransactionModSlice{
		TransactionMods.RandomID(f),
		TransactionMods.RandomAccountID(f),
		TransactionMods.RandomCategoryID(f),
		TransactionMods.RandomAmount(f),
		TransactionMods.RandomTransactionName(f),
		TransactionMods.RandomTransactionDate(f),
		TransactionMods.RandomCreatedAt(f),
	}
}

// Set the model columns to this value
func (m transactionMods) ID(val uuid.UUID) TransactionMod {
	return TransactionModFunc(func(_ context.Context, o *TransactionTemplate) {
		o.ID = func() uuid.UUID { return val }
	})
}

// Set the Column from the function
func (m transactionMods) IDFunc(f func() uuid.UUID) TransactionMod {
	return TransactionModFunc(func(_ context.Context, o *TransactionTemplate) {
		o.ID = f
	})
}

// Clear any values for the column
func (m transactionMods) UnsetID() TransactionMod {
	return TransactionModFunc(func(_ context.Context, o *TransactionTemplate) {
		o.ID = nil
	})
}

// Generates a random value for the column using the given faker
// if faker is nil, a default faker is used
func (m transactionMods) RandomID(f *faker.Faker) TransactionMod {
	return TransactionModFunc(func(_ context.Context, o *TransactionTemplate) {
		o.ID = func() uuid.UUID {
			return random_uuid_UUID(f)
		}
	})
}

// Set the model columns to this value
func (m transactionMods) AccountID(val uuid.UUID) TransactionMod {
	return TransactionModFunc(func(_ context.Context, o *TransactionTemplate) {
		o.AccountID = func() uuid.UUID { return val }
	})
}

// Set the Column from the function
func (m transactionMods) AccountIDFunc(f func() uuid.UUID) TransactionMod {
	return TransactionModFunc(func(_ context.Context, o *TransactionTemplate) {
		o.AccountID = f
	})
}

// Clear any values for the column
func (m transactionMods) UnsetAccountID() TransactionMod {
	return TransactionModFunc(func(_ context.Context, o *TransactionTemplate) {
		o.AccountID = nil
	})
}

// Generates a random value for the column using the given faker
// if faker is nil, a default faker is used
func (m transactionMods) RandomAccountID(f *faker.Faker) TransactionMod {
	return TransactionModFunc(func(_ context.Context, o *TransactionTemplate) {
		o.AccountID = func() uuid.UUID {
			return random_uuid_UUID(f)
		}
	})
}

// Set the model columns to this value
func (m transactionMods) CategoryID(val uuid.UUID) TransactionMod {
	return TransactionModFunc(func(_ context.Context, o *TransactionTemplate) {
		o.CategoryID = func() uuid.UUID { return val }
	})
}

// Set the Column from the function
func (m transactionMods) CategoryIDFunc(f func() uuid.UUID) TransactionMod {
	return TransactionModFunc(func(_ context.Context, o *TransactionTemplate) {
		o.CategoryID = f
	})
}

// Clear any values for the column
func (m transactionMods) UnsetCategoryID() TransactionMod {
	return TransactionModFunc(func(_ context.Context, o *TransactionTemplate) {
		o.CategoryID = nil
	})
}

// Generates a random value for the column using the given faker
// if faker is nil, a default faker is used
func (m transactionMods) RandomCategoryID(f *faker.Faker) TransactionMod {
	return TransactionModFunc(func(_ context.Context, o *TransactionTemplate) {
		o.CategoryID = func() uuid.UUID {
			return random_uuid_UUID(f)
		}
	})
}

// Set the model columns to this value
func (m transactionMods) Amount(val decimal.Decimal) TransactionMod {
	return TransactionModFunc(func(_ context.Context, o *TransactionTemplate) {
		o.Amount = func() decimal.Decimal { return val }
	})
}

// Set the Column from the function
func (m transactionMods) AmountFunc(f func() decimal.Decimal) TransactionMod {
	return TransactionModFunc(func(_ context.Context, o *TransactionTemplate) {
		o.Amount = f
	})
}

// Clear any values for the column
func (m transactionMods) UnsetAmount() TransactionMod {
	return TransactionModFunc(func(_ context.Context, o *TransactionTemplate) {
		o.Amount = nil
	})
}

// Generates a random value for the column using the given faker
// if faker is nil, a default faker is used
func (m transactionMods) RandomAmount(f *faker.Faker) TransactionMod {
	return TransactionModFunc(func(_ context.Context, o *TransactionTemplate) {
		o.Amount = func() decimal.Decimal {
			return random_decimal_Decimal(f, "14", "2")
		}
	})
}

// Set the model columns to this value
func (m transactionMods) TransactionName(val string) TransactionMod {
	return TransactionModFunc(func(_ context.Context, o *TransactionTemplate) {
		o.TransactionName = func() string { return val }
	})
}

// Set the Column from the function
func (m transactionMods) TransactionNameFunc(f func() string) TransactionMod {
	return TransactionModFunc(func(_ context.Context, o *TransactionTemplate) {
		o.TransactionName = f
	})
}

// Clear any values for the column
func (m transactionMods) UnsetTransactionName() TransactionMod {
	return TransactionModFunc(func(_ context.Context, o *TransactionTemplate) {
		o.TransactionName = nil
	})
}

// Generates a random value for the column using the given faker
// if faker is nil, a default faker is used
func (m transactionMods) RandomTransactionName(f *faker.Faker) TransactionMod {
	return TransactionModFunc(func(_ context.Context, o *TransactionTemplate) {
		o.TransactionName = func() string {
			return random_string(f)
		}
	})
}

// Set the model columns to this value
func (m transactionMods) TransactionDate(val time.Time) TransactionMod {
	return TransactionModFunc(func(_ context.Context, o *TransactionTemplate) {
		o.TransactionDate = func() time.Time { return val }
	})
}

// Set the Column from the function
func (m transactionMods) TransactionDateFunc(f func() time.Time) TransactionMod {
	return TransactionModFunc(func(_ context.Context, o *TransactionTemplate) {
		o.TransactionDate = f
	})
}

// Clear any values for the column
func (m transactionMods) UnsetTransactionDate() TransactionMod {
	return TransactionModFunc(func(_ context.Context, o *TransactionTemplate) {
		o.TransactionDate = nil
	})
}

// Generates a random value for the column using the given faker
// if faker is nil, a default faker is used
func (m transactionMods) RandomTransactionDate(f *faker.Faker) TransactionMod {
	return TransactionModFunc(func(_ context.Context, o *TransactionTemplate) {
		o.TransactionDate = func() time.Time {
			return random_time_Time(f)
		}
	})
}

// Set the model columns to this value
func (m transactionMods) CreatedAt(val time.Time) TransactionMod {
	return TransactionModFunc(func(_ context.Context, o *TransactionTemplate) {
		o.CreatedAt = func() time.Time { return val }
	})
}

// Set the Column from the function
func (m transactionMods) CreatedAtFunc(f func() time.Time) TransactionMod {
	return TransactionModFunc(func(_ context.Context, o *TransactionTemplate) {
		o.CreatedAt = f
	})
}

// Clear any values for the column
func (m transactionMods) UnsetCreatedAt() TransactionMod {
	return TransactionModFunc(func(_ context.Context, o *TransactionTemplate) {
		o.CreatedAt = nil
	})
}

// Generates a random value for the column using the given faker
// if faker is nil, a default faker is used
func (m transactionMods) RandomCreatedAt(f *faker.Faker) TransactionMod {
	return TransactionModFunc(func(_ context.Context, o *TransactionTemplate) {
		o.CreatedAt = func() time.Time {
			return random_time_Time(f)
		}
	})
}

func (m transactionMods) WithParentsCascading() TransactionMod {
	return TransactionModFunc(func(ctx context.Context, o *TransactionTemplate) {
		if isDone, _ := transactionWithParentsCascadingCtx.Value(ctx); isDone {
			return
		}
		ctx = transactionWithParentsCascadingCtx.WithValue(ctx, true)
		{

			related := o.f.NewAccountWithContext(ctx, AccountMods.WithParentsCascading())
			m.WithAccount(related).Apply(ctx, o)
		}
		{

			related := o.f.NewCategoryWithContext(ctx, CategoryMods.WithParentsCascading())
			m.WithCategory(related).Apply(ctx, o)
		}
	})
}

func (m transactionMods) WithAccount(rel *AccountTemplate) TransactionMod {
	return TransactionModFunc(func(ctx context.Context, o *TransactionTemplate) {
		o.r.Account = &transactionRAccountR{
			o: rel,
		}
	})
}

func (m transactionMods) WithNewAccount(mods ...AccountMod) TransactionMod {
	return TransactionModFunc(func(ctx context.Context, o *TransactionTemplate) {
		related := o.f.NewAccountWithContext(ctx, mods...)

		m.WithAccount(related).Apply(ctx, o)
	})
}

func (m transactionMods) WithExistingAccount(em *models.Account) TransactionMod {
	return TransactionModFunc(func(ctx context.Context, o *TransactionTemplate) {
		o.r.Account = &transactionRAccountR{
			o: o.f.FromExistingAccount(em),
		}
	})
}

func (m transactionMods) WithoutAccount() TransactionMod {
	return TransactionModFunc(func(ctx context.Context, o *TransactionTemplate) {
		o.r.Account = nil
	})
}

func (m transactionMods) WithCategory(rel *CategoryTemplate) TransactionMod {
	return TransactionModFunc(func(ctx context.Context, o *TransactionTemplate) {
		o.r.Category = &transactionRCategoryR{
			o: rel,
		}
	})
}

func (m transactionMods) WithNewCategory(mods ...CategoryMod) TransactionMod {
	return TransactionModFunc(func(ctx context.Context, o *TransactionTemplate) {
		related := o.f.NewCategoryWithContext(ctx, mods...)

		m.WithCategory(related).Apply(ctx, o)
	})
}

func (m transactionMods) WithExistingCategory(em *models.Category) TransactionMod {
	return TransactionModFunc(func(ctx context.Context, o *TransactionTemplate) {
		o.r.Category = &transactionRCategoryR{
			o: o.f.FromExistingCategory(em),
		}
	})
}

func (m transactionMods) WithoutCategory() TransactionMod {
	return TransactionModFunc(func(ctx context.Context, o *TransactionTemplate) {
		o.r.Category = nil
	})
}
