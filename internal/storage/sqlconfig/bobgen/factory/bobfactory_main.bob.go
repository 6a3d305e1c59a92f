// Code generated by BobGen psql v0.42.0. DO NOT EDIT.
// This file is meant to be re-generated in place and/or deleted at any time.

package factory

import (
	"context"
	"time"

	models "github.com/carson-networks/report-server/internal/storage/sqlconfig/bobgen/models"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type Factory struct {
	baseAccountMods     AccountModSlice
	baseCategoryMods    CategoryModSlice
	baseTransactionMods TransactionModSlice
}

func New() *Factory {
	return &Factory{}
}

func (f *Factory) NewAccount(mods ...AccountMod) *AccountTemplate {
	return f.NewAccountWithContext(context.Background(), mods...)
}

func (f *Factory) NewAccountWithContext(ctx context.Context, mods ...AccountMod) *AccountTemplate {
	o := &AccountTemplate{f: f}

	if f != nil {
		f.baseAccountMods.Apply(ctx, o)
	}

	AccountModSlice(mods).Apply(ctx, o)

	return o
}

func (f *Factory) FromExistingAccount(m *models.Account) *AccountTemplate {
	o := &AccountTemplate{f: f, alreadyPersisted: true}

	o.ID = func() uuid.UUID { return m.ID }
	o.Name = func() string { return m.Name }
	o.Type = func() int16 { return m.Type }
	o.SubType = func() string { return m.SubType }
	o.Balance = func() decimal.Decimal { return m.Balance }
	o.CreatedAt = func() time.Time { return m.CreatedAt }

	ctx := context.Background()
	if len(m.R.Transactions) > 0 {
		AccountMods.AddExistingTransactions(m.R.Transactions...).Apply(ctx, o)
	}

	return o
}

func (f *Factory) NewCategory(mods ...CategoryMod) *CategoryTemplate {
	return f.NewCategoryWithContext(context.Background(), mods...)
}

func (f *Factory) NewCategoryWithContext(ctx context.Context, mods ...CategoryMod) *CategoryTemplate {
	o := &CategoryTemplate{f: f}

	if f != nil {
		f.baseCategoryMods.Apply(ctx, o)
	}

	CategoryModSlice(mods).Apply(ctx, o)

	return o
}

func (f *Factory) FromExistingCategory(m *models.Category) *CategoryTemplate {
	o := &CategoryTemplate{f: f, alreadyPersisted: true}

	o.ID = func() uuid.UUID { return m.ID }
	o.Name = func() string { return m.Name }
	o.Color = func() string { return m.Color }
	o.CreatedAt = func() time.Time { return m.CreatedAt }

	ctx := context.Background()
	if len(m.R.Transactions) > 0 {
		CategoryMods.AddExistingTransactions(m.R.Transactions...).Apply(ctx, o)
	}

	return o
}

func (f *Factory) NewTransaction(mods ...TransactionMod) *TransactionTemplate {
	return f.NewTransactionWithContext(context.Background(), mods...)
}

func (f *Factory) NewTransactionWithContext(ctx context.Context, mods ...TransactionMod) *TransactionTemplate {
	o := &TransactionTemplate{f: f}

	if f != nil {
		f.baseTransactionMods.Apply(ctx, o)
	}

	TransactionModSlice(mods).Apply(ctx, o)

	return o
}

func (f *Factory) FromExistingTransaction(m *models.Transaction) *TransactionTemplate {
	o := &TransactionTemplate{f: f, alreadyPersisted: true}

	o.ID = func() uuid.UUID { return m.ID }
	o.AccountID = func() uuid.UUID { return m.AccountID }
	o.CategoryID = func() uuid.UUID { return m.CategoryID }
	o.Amount = func() decimal.Decimal { return m.Amount }
	o.TransactionName = func() string { return m.TransactionName }
	o.TransactionDate = func() time.Time { return m.TransactionDate }
	o.CreatedAt = func() time.Time { return m.CreatedAt }

	ctx := context.Background()
	if m.R.Account != nil {
		TransactionMods.WithExistingAccount(m.R.Account).Apply(ctx, o)
	}
	if m.R.Category != nil {
		TransactionMods.WithExistingCategory(m.R.Category).Apply(ctx, o)
	}

	return o
}

func (f *Factory) ClearBaseAccountMods() {
	f.baseAccountMods = nil
}

func (f *Factory) AddBaseAccountMod(mods ...AccountMod) {
	f.baseAccountMods = append(f.baseAccountMods, mods...)
}

func (f *Factory) ClearBaseCategoryMods() {
	f.baseCategoryMods = nil
}

func (f *Factory) AddBaseCategoryMod(mods ...CategoryMod) {
	f.baseCategoryMods = append(f.baseCategoryMods, mods...)
}

func (f *Factory) ClearBaseTransactionMods() {
	f.baseTransactionMods = nil
}

func (f *Factory) AddBaseTransactionMod(mods ...TransactionMod) {
	f.baseTransactionMods = append(f.baseTransactionMods, mods...)
}
