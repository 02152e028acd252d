// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecordType represents the kind of financial record.
type RecordType string

const (
	RecordTypeIncome      RecordType = "income"
	RecordTypeExpense     RecordType = "expense"
	RecordTypeBill        RecordType = "bill"
	RecordTypeSavings     RecordType = "savings"
	RecordTypeInstallment RecordType = "installment"
)

// RecordTypes lists every valid record type in display order.
var RecordTypes = []RecordType{
	RecordTypeIncome,
	RecordTypeExpense,
	RecordTypeBill,
	RecordTypeSavings,
	RecordTypeInstallment,
}

// RecordTypeLabels maps every record type to its display label.
var RecordTypeLabels = map[RecordType]string{
	RecordTypeIncome:      "Salary or income",
	RecordTypeExpense:     "Expense",
	RecordTypeBill:        "Bill",
	RecordTypeSavings:     "Savings",
	RecordTypeInstallment: "Installment",
}

// IsValidRecordType reports whether t is one of the five known record types.
func IsValidRecordType(t RecordType) bool {
	switch t {
	case RecordTypeIncome, RecordTypeExpense, RecordTypeBill, RecordTypeSavings, RecordTypeInstallment:
		return true
	}
	return false
}

// IsSpendingType reports whether t counts toward spending displays
// (monthly and category breakdowns). Savings is excluded.
func IsSpendingType(t RecordType) bool {
	return t == RecordTypeExpense || t == RecordTypeBill || t == RecordTypeInstallment
}

// IsOutflowType reports whether t reduces the spendable balance.
// Savings is included here: money moved to savings is not available.
func IsOutflowType(t RecordType) bool {
	return IsSpendingType(t) || t == RecordTypeSavings
}

// Record represents a single financial record in the tracker.
// Amount is always non-negative; the sign of a record's contribution to
// the balance is derived from its Type, never stored.
type Record struct {
	ID        uuid.UUID
	Type      RecordType
	Amount    decimal.Decimal
	Category  string
	Label     string
	Date      string // calendar date, "YYYY-MM-DD"
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewRecord creates a new Record entity with a server-assigned ID.
func NewRecord(
	recordType RecordType,
	amount decimal.Decimal,
	category string,
	label string,
	date string,
) *Record {
	now := time.Now().UTC()

	return &Record{
		ID:        uuid.New(),
		Type:      recordType,
		Amount:    amount,
		Category:  category,
		Label:     label,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
