// Code generated by BobGen psql v0.42.0. DO NOT EDIT.
// This file is meant to be re-generated in place and/or deleted at any time.

package dbinfo

import "github.com/aarondl/opt/null"

var Accounts = Table[
	accountColumns,
	accountIndexes,
	accountForeignKeys,
	accountUniques,
	accountChecks,
]{
	Schema: "",
	Name:   "accounts",
	Columns: accountColumns{
		ID: column{
			Name:      "id",
			DBType:    "uuid",
			Default:   "gen_random_uuid()",
			Comment:   "",
			Nullable:  false,
			Generated: false,
			AutoIncr:  false,
		},
		Name: column{
			Name:      "name",
			DBType:    "text",
			Default:   "",
			Comment:   "",
			Nullable:  false,
			Generated: false,
			AutoIncr:  false,
		},
		Type: column{
			Name:      "type",
			DBType:    "smallint",
			Default:   "0",
			Comment:   "",
			Nullable:  false,
			Generated: false,
			AutoIncr:  false,
		},
		SubType: column{
			Name:      "sub_type",
			DBType:    "text",
			Default:   "''::text",
			Comment:   "",
			Nullable:  false,
			Generated: false,
			AutoIncr:  false,
		},
		Balance: column{
			Name:      "balance",
			DBType:    "numeric",
			Default:   "0",
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
	Indexes: accountIndexes{
		AccountsPkey: index{
			Type: "btree",
			Name: "accounts_pkey",
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
	},
	PrimaryKey: &constraint{
		Name:    "accounts_pkey",
		Columns: []string{"id"},
		Comment: "",
	},

	Comment: "",
}

type accountColumns struct {
	ID        column
	Name      column
	Type      column
	SubType   column
	Balance   column
	CreatedAt column
}

func (c accountColumns) AsSlice() []column {
	return []column{
		c.ID, c.Name, c.Type, c.SubType, c.Balance, c.CreatedAt,
	}
}

type accountIndexes struct {
	AccountsPkey index
}

func (i accountIndexes) AsSlice() []index {
	return []index{
		i.AccountsPkey,
	}
}

type accountForeignKeys struct{}

func (f accountForeignKeys) AsSlice() []foreignKey {
	return []foreignKey{}
}

type accountUniques struct{}

func (u accountUniques) AsSlice() []constraint {
	return []constraint{}
}

type accountChecks struct{}

func (c accountChecks) AsSlice() []check {
	return []check{}
}
