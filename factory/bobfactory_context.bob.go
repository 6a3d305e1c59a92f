// Code generated by BobGen psql v0.42.0. DO NOT EDIT.
// This file is meant to be re-generated in place and/or deleted at any time.

package factory

import "context"

type contextKey string

var (
	// Relationship Contexts for accounts
	accountWithParentsCascadingCtx = newContextual[bool]("accountWithParentsCascading")
	accountRelTransactionsCtx      = newContextual[bool]("accounts.transactions.transactions.transactions_account_id_fkey")

	// Relationship Contexts for categories
	categoryWithParentsCascadingCtx = newContextual[bool]("categoryWithParentsCascading")
	categoryRelTransactionsCtx      = newContextual[bool]("categories.transactions.transactions.transactions_category_id_fkey")

	// Relationship Contexts for transactions
	transactionWithParentsCascadingCtx = newContextual[bool]("transactionWithParentsCascading")
	transactionRelAccountCtx           = newContextual[bool]("accounts.transactions.transactions.transactions_account_id_fkey")
	transactionRelCategoryCtx          = newContextual[bool]("categories.transactions.transactions.transactions_category_id_fkey")
)

// Contextual is a convienience wrapper around context.WithValue and context.Value
type contextual[V any] struct {
	key contextKey
}

func newContextual[V any](key string) contextual[V] {
	return contextual[V]{key: contextKey(key)}
}

func (k contextual[V]) WithValue(ctx context.Context, val V) context.Context {
	return context.WithValue(ctx, k.key, val)
}

func (k contextual[V]) Value(ctx context.Context) (V, bool) {
	v, ok := ctx.Value(k.key).(V)
	return v, ok
}
