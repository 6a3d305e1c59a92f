// Code generated by BobGen psql v0.42.0. DO NOT EDIT.
// This file is meant to be re-generated in place and/or deleted at any time.

package dberrors

var AccountErrors = &accountErrors{
	ErrUniqueAccountsPkey: &UniqueConstraintError{
		schema:  "",
		table:   "accounts",
		columns: []string{"id"},
		s:       "accounts_pkey",
	},
}

type accountErrors struct {
	ErrUniqueAccountsPkey *UniqueConstraintError
}
