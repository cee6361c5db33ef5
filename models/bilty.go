package models

// Bilty is a freight-shipment billing record. Pointer fields map to
// nullable columns; id is assigned by the store on insert.
type Bilty struct {
	ID             int64    `json:"id" db:"id" bson:"_id"`
	BiltySlNo      string   `json:"bilty_sl_no" db:"bilty_sl_no" bson:"bilty_sl_no"`
	LrNo           *string  `json:"lr_no" db:"lr_no" bson:"lr_no"`
	BillNo         *string  `json:"bill_no" db:"bill_no" bson:"bill_no"`
	BillDate       *string  `json:"bill_date" db:"bill_date" bson:"bill_date"`
	TruckNo        *string  `json:"truck_no" db:"truck_no" bson:"truck_no"`
	Destination    *string  `json:"destination" db:"destination" bson:"destination"`
	Weight         *float64 `json:"weight" db:"weight" bson:"weight"`
	Freight        *float64 `json:"freight" db:"freight" bson:"freight"`
	Diesel         *float64 `json:"diesel" db:"diesel" bson:"diesel"`
	TotalAdv       *float64 `json:"total_adv" db:"total_adv" bson:"total_adv"`
	Balance        *float64 `json:"balance" db:"balance" bson:"balance"`
	PumpName       *string  `json:"pump_name" db:"pump_name" bson:"pump_name"`
	PaymentOfficer *string  `json:"payment_officer" db:"payment_officer" bson:"payment_officer"`
	DamageIfAny    *string  `json:"damage_if_any" db:"damage_if_any" bson:"damage_if_any"`
	Margin         *float64 `json:"margin" db:"margin" bson:"margin"`
}

// BiltyInput is the request body for create and update. Decimal-bearing
// fields arrive as RawNumber so the handler can check raw presence
// before coercion runs.
type BiltyInput struct {
	BiltySlNo      string    `json:"bilty_sl_no"`
	LrNo           *string   `json:"lr_no"`
	BillNo         *string   `json:"bill_no"`
	BillDate       *string   `json:"bill_date"`
	TruckNo        *string   `json:"truck_no"`
	Destination    *string   `json:"destination"`
	Weight         RawNumber `json:"weight"`
	Freight        RawNumber `json:"freight"`
	Diesel         RawNumber `json:"diesel"`
	TotalAdv       RawNumber `json:"total_adv"`
	Balance        RawNumber `json:"balance"`
	PumpName       *string   `json:"pump_name"`
	PaymentOfficer *string   `json:"payment_officer"`
	DamageIfAny    *string   `json:"damage_if_any"`
	Margin         RawNumber `json:"margin"`
}

// ToRecord applies numeric coercion and produces the record to persist.
// Fields omitted from the body come through as nil, which update writes
// back as NULL (full replacement).
func (in *BiltyInput) ToRecord() *Bilty {
	return &Bilty{
		BiltySlNo:      in.BiltySlNo,
		LrNo:           in.LrNo,
		BillNo:         in.BillNo,
		BillDate:       in.BillDate,
		TruckNo:        in.TruckNo,
		Destination:    in.Destination,
		Weight:         in.Weight.Coerce(),
		Freight:        in.Freight.Coerce(),
		Diesel:         in.Diesel.Coerce(),
		TotalAdv:       in.TotalAdv.Coerce(),
		Balance:        in.Balance.Coerce(),
		PumpName:       in.PumpName,
		PaymentOfficer: in.PaymentOfficer,
		DamageIfAny:    in.DamageIfAny,
		Margin:         in.Margin.Coerce(),
	}
}
