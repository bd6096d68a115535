package readers

import (
	"io"
)

// BankRecord is a raw row of the bank reference table before validation.
type BankRecord struct {
	Index          int
	EuropeanCode   string // CÓDIGO EUROPEO
	Name           string // NOMBRE
	Address        string // DIRECCIÓN
	LEI            string // LEI
	Operator       string // OPERADOR
	Provider       string // PROVEEDOR
	SupervisorCode string // CÓDIGO DE SUPERVISOR
}

// BankRecordsReader defines the interface for reading the bank reference table.
type BankRecordsReader interface {
	ReadBankRecords(reader io.Reader) ([]BankRecord, error)
}
