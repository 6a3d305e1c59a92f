// Code generated by BobGen psql v0.42.0. DO NOT EDIT.
// This file is meant to be re-generated in place and/or deleted at any time.

package dbinfo

import "github.com/aarondl/opt/null"

var Categories = Table[
	categoryColumns,
	categoryIndexes,
	categoryForeignKeys,
	categoryUniques,
	categoryChecks,
]{
	Schema: "",
	Name:   "categories",
	Columns: categoryColumns{
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
		Color: column{
			Name:      "color",
			DBType:    "text",
			Default:   "'#999999'::text",
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
	Indexes: categoryIndexes{
		CategoriesPkey: index{
			Type: "btree",
			Name: "categories_pkey",
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
		CategoriesNameIdx: index{
			Type: "btree",
			Name: "categories_name_idx",
			Columns: []indexColumn{
				{
					Name:         "name",
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
		Name:    "categories_pkey",
		Columns: []string{"id"},
		Comment: "",
	},

	Comment: "",
}

type categoryColumns struct {
	ID        column
	Name      column
	Color     column
	CreatedAt column
}

func (c categoryColumns) AsSlice() []column {
	return []column{
		c.ID, c.Name, c.Color, c.CreatedAt,
	}
}

type categoryIndexes struct {
	CategoriesPkey    index
	CategoriesNameIdx index
}

func (i categoryIndexes) AsSlice() []index {
	return []index{
		i.CategoriesPkey, i.CategoriesNameIdx,
	}
}

type categoryForeignKeys struct{}

func (f categoryForeignKeys) AsSlice() []foreignKey {
	return []foreignKey{}
}

type categoryUniques struct{}

func (u categoryUniques) AsSlice() []constraint {
	return []constraint{}
}

type categoryChecks struct{}

func (c categoryChecks) AsSlice() []check {
	return []check{}
}
