// Code generated by BobGen psql v0.42.0. DO NOT EDIT.
// This file is meant to be re-generated in place and/or deleted at any time.

package factory

import (
	"testing"

	"github.com/stephenafamo/bob"
)

// Set the testDB to enable tests that use the database
var testDB bob.Transactor[bob.Tx]

func TestRandom_decimal_Decimal(t *testing.T) {
	t.Parallel()

	val1 := random_decimal_Decimal(nil)
	val2 := random_decimal_Decimal(nil)

	if val1.Equal(val2) {
		t.Fatalf("random_decimal_Decimal() returned the same value twice: %v", val1)
	}
}

func TestRandom_int16(t *testing.T) {
	t.Parallel()

	val1 := random_int16(nil)
	val2 := random_int16(nil)

	if val1 == val2 {
		t.Fatalf("random_int16() returned the same value twice: %v", val1)
	}
}

func TestRandom_string(t *testing.T) {
	t.Parallel()

	val1 := random_string(nil)
	val2 := random_string(nil)

	if val1 == val2 {
		t.Fatalf("random_string() returned the same value twice: %v", val1)
	}
}

func TestRandom_time_Time(t *testing.T) {
	t.Parallel()

	val1 := random_time_Time(nil)
	val2 := random_time_Time(nil)

	if val1.Equal(val2) {
		t.Fatalf("random_time_Time() returned the same value twice: %v", val1)
	}
}

func TestRandom_uuid_UUID(t *testing.T) {
	t.Parallel()

	val1 := random_uuid_UUID(nil)
	val2 := random_uuid_UUID(nil)

	if val1 == val2 {
		t.Fatalf("random_uuid_UUID() returned the same value twice: %v", val1)
	}
}
