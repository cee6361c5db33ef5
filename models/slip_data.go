package models

// BiltySlipData is the template payload for the printable bilty slip.
// All values are pre-formatted strings; blanks render as "-".
type BiltySlipData struct {
	CompanyName    string
	ID             int64
	BiltySlNo      string
	LrNo           string
	BillNo         string
	BillDate       string
	TruckNo        string
	Destination    string
	Weight         string
	Freight        string
	Diesel         string
	TotalAdv       string
	Balance        string
	PumpName       string
	PaymentOfficer string
	DamageIfAny    string
	Margin         string
	BalanceWords   string
	GeneratedAt    string
}
