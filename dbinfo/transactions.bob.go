// Code generated by BobGen psql v0.42.0. DO NOT EDIT.
// This file is meant to be re-generated in place and/or deleted at any time.

package dbinfo

import "github.com/aarondl/opt/null"

var Transactions = Table[
	transactionColumns,
	transactionIndexes,
	transactionForeignKeys,
	transactionUniques,
	transactionChecks,
]{
	Schema: "",
	Name:   "transactions",
	Columns: transactionColumns{
		ID: column{
			Name:      "id",
			DBType:    "uuid",
			Default:   "gen_random_uuid()",
			Comment:   "",
			Nullable:  false,
			Generated: false,
			AutoIncr:  false,
		},
		AccountID: column{
			Name:      "account_id",
			DBType:    "uuid",
			Default:   "",
			Comment:   "",
			Nullable:  false,
			Generated: false,
			AutoIncr:  false,
		},
		CategoryID: column{
			Name:      "category_id",
			DBType:    "uuid",
			Default:   "",
			Comment:   "",
			Nullable:  false,
			Generated: false,
			AutoIncr:  false,
		},
		Amount: column{
			Name:      "amount",
			DBType:    "numeric",
			Default:   "",
			Comment:   "",
			Nullable:  false,
			Generated: false,
			AutoIncr:  false,
		},
		TransactionName: column{
			Name:      "transaction_name",
			DBType:    "text",
			Default:   "''::text",
			Comment:   "",
			Nullable:  false,
			Generated: false,
			AutoIncr:  false,
		},
		TransactionDate: column{
			Name:      "transaction_date",
			DBType:    "date",
			Default:   "",
			Comment:   "",
			Nullable:  false,
			Generated: false,
			AutoIncr:  false,
		},
		CreatedAt: column{
			Name:      "created_at",
			DBType:    "timestamp with time zone",
			Default:   "now()",
			Comment:   "",
			Nullable:  false,
			Generated: false,
			AutoIncr:  false,
		},
	},
	Indexes: transactionIndexes{
		TransactionsPkey: index{
			Type: "btree",
			Name: "transactions_pkey",
			Columns: []indexColumn{
				{
					Name:         "id",
					Desc:         null.FromCond(false, true),
					IsExpression: false,
				},
			},
			Unique:        true,
			Comment:       "",
			NullsFirst:    []bool{false},
			NullsDistinct: false,
			Where:         "",
			Include:       []string{},
		},
		TransactionsAccountIdx: index{
			Type: "btree",
			Name: "transactions_account_idx",
			Columns: []indexColumn{
				{
					Name:         "account_id",
					Desc:         null.FromCond(false, true),
					IsExpression: false,
				},
			},
			Unique:        false,
			Comment:       "",
			NullsFirst:    []bool{false},
			NullsDistinct: false,
			Where:         "",
			Include:       []string{},
		},
		TransactionsCategoryDateIdx: index{
			Type: "btree",
			Name: "transactions_category_date_idx",
			Columns: []indexColumn{
				{
					Name:         "category_id",
					Desc:         null.FromCond(false, true),
					IsExpression: false,
				},
				{
					Name:         "transaction_date",
					Desc:         null.FromCond(false, true),
					IsExpression: false,
				},
			},
			Unique:        false,
			Comment:       "",
			NullsFirst:    []bool{false, false},
			NullsDistinct: false,
			Where:         "",
			Include:       []string{},
		},
		TransactionsDateIdx: index{
			Type: "btree",
			Name: "transactions_date_idx",
			Columns: []indexColumn{
				{
					Name:         "transaction_date",
					Desc:         null.FromCond(false, true),
					IsExpression: false,
				},
			},
			Unique:        false,
			Comment:       "",
			NullsFirst:    []bool{false},
			NullsDistinct: false,
			Where:         "",
			Include:       []string{},
		},
	},
	PrimaryKey: &constraint{
		Name:    "transactions_pkey",
		Columns: []string{"id"},
		Comment: "",
	},
	ForeignKeys: transactionForeignKeys{
		TransactionsTransactionsAccountIDFkey: foreignKey{
			constraint: constraint{
				Name:    "transactions.transactions_account_id_fkey",
				Columns: []string{"account_id"},
				Comment: "",
			},
			ForeignTable:   "accounts",
			ForeignColumns: []string{"id"},
		},
		TransactionsTransactionsCategoryIDFkey: foreignKey{
			constraint: constraint{
				Name:    "transactions.transactions_category_id_fkey",
				Columns: []string{"category_id"},
				Comment: "",
			},
			ForeignTable:   "categories",
			ForeignColumns: []string{"id"},
		},
	},

	Comment: "",
}

type transactionColumns struct {
	ID              column
	AccountID       column
	CategoryID      column
	Amount          column
	TransactionName column
	TransactionDate column
	CreatedAt       column
}

func (c transactionColumns) AsSlice() []column {
	return []column{
		c.ID, c.AccountID, c.CategoryID, c.Amount, c.TransactionName, c.TransactionDate, c.CreatedAt,
	}
}

type transactionIndexes struct {
	TransactionsPkey            index
	TransactionsAccountIdx      index
	TransactionsCategoryDateIdx index
	TransactionsDateIdx         index
}

func (i transactionIndexes) AsSlice() []index {
	return []index{
		i.TransactionsPkey, i.TransactionsAccountIdx, i.TransactionsCategoryDateIdx, i.TransactionsDateIdx,
	}
}

type transactionForeignKeys struct {
	TransactionsTransactionsAccountIDFkey  foreignKey
	TransactionsTransactionsCategoryIDFkey foreignKey
}

func (f transactionForeignKeys) AsSlice() []foreignKey {
	return []foreignKey{
		f.TransactionsTransactionsAccountIDFkey, f.TransactionsTransactionsCategoryIDFkey,
	}
}

type transactionUniques struct{}

func (u transactionUniques) AsSlice() []constraint {
	return []constraint{}
}

type transactionChecks struct{}

func (c transactionChecks) AsSlice() []check {
	return []check{}
}
