package dto

import "time"

// CompanySnapshot is the full exported state of one company: its name, chart
// with current balances and the complete transaction log.
type CompanySnapshot struct {
	CompanyID    string                `json:"companyID"`
	Name         string                `json:"name"`
	Accounts     []AccountResponse     `json:"accounts"`
	Transactions []TransactionResponse `json:"transactions"`
}

// SnapshotExport is the backup structure handed to external exporters. Every
// amount serializes as a decimal string, never a binary float, so the
// structure round-trips losslessly.
type SnapshotExport struct {
	ExportedAt time.Time         `json:"exportedAt"`
	Companies  []CompanySnapshot `json:"companies"`
}
