package repository

import (
	"database/sql"
	"errors"

	"biltyledger/models"

	"github.com/lib/pq"
)

type PostgresBiltyRepo struct {
	DB *sql.DB
}

func NewPostgresBiltyRepo(db *sql.DB) *PostgresBiltyRepo {
	return &PostgresBiltyRepo{DB: db}
}

const biltyColumns = `id, bilty_sl_no, lr_no, bill_no, bill_date, truck_no, destination,
	weight, freight, diesel, total_adv, balance, pump_name, payment_officer, damage_if_any, margin`

// classifyError maps the driver's constraint-violation classes onto the
// repository's typed errors; anything else passes through untouched.
func classifyError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code.Name() {
	case "unique_violation":
		// bilty_sl_no carries the only unique constraint besides the pkey
		return &ConflictError{Field: "bilty_sl_no"}
	case "not_null_violation":
		return &MissingColumnError{Column: pqErr.Column}
	}
	return err
}

func scanBilty(scan func(dest ...interface{}) error) (*models.Bilty, error) {
	var b models.Bilty
	err := scan(
		&b.ID, &b.BiltySlNo, &b.LrNo, &b.BillNo, &b.BillDate, &b.TruckNo, &b.Destination,
		&b.Weight, &b.Freight, &b.Diesel, &b.TotalAdv, &b.Balance,
		&b.PumpName, &b.PaymentOfficer, &b.DamageIfAny, &b.Margin,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// ListBilty returns all records, newest first.
func (r *PostgresBiltyRepo) ListBilty() ([]*models.Bilty, error) {
	rows, err := r.DB.Query(`
		SELECT ` + biltyColumns + `
		FROM bilty
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.Bilty
	for rows.Next() {
		b, err := scanBilty(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	return result, rows.Err()
}

// GetBiltyByID returns the matching record, or nil when absent.
func (r *PostgresBiltyRepo) GetBiltyByID(id int64) (*models.Bilty, error) {
	row := r.DB.QueryRow(`
		SELECT `+biltyColumns+`
		FROM bilty
		WHERE id = $1
	`, id)

	b, err := scanBilty(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// CreateBilty inserts a new record and fills in the assigned id.
func (r *PostgresBiltyRepo) CreateBilty(bilty *models.Bilty) error {
	err := r.DB.QueryRow(`
		INSERT INTO bilty(
			bilty_sl_no, lr_no, bill_no, bill_date, truck_no, destination,
			weight, freight, diesel, total_adv, balance,
			pump_name, payment_officer, damage_if_any, margin
		)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
		RETURNING id
	`,
		bilty.BiltySlNo, bilty.LrNo, bilty.BillNo, bilty.BillDate, bilty.TruckNo, bilty.Destination,
		bilty.Weight, bilty.Freight, bilty.Diesel, bilty.TotalAdv, bilty.Balance,
		bilty.PumpName, bilty.PaymentOfficer, bilty.DamageIfAny, bilty.Margin,
	).Scan(&bilty.ID)
	return classifyError(err)
}

// UpdateBilty overwrites every column of the matching row.
func (r *PostgresBiltyRepo) UpdateBilty(bilty *models.Bilty) error {
	res, err := r.DB.Exec(`
		UPDATE bilty SET
			bilty_sl_no=$1,
			lr_no=$2,
			bill_no=$3,
			bill_date=$4,
			truck_no=$5,
			destination=$6,
			weight=$7,
			freight=$8,
			diesel=$9,
			total_adv=$10,
			balance=$11,
			pump_name=$12,
			payment_officer=$13,
			damage_if_any=$14,
			margin=$15
		WHERE id=$16
	`,
		bilty.BiltySlNo, bilty.LrNo, bilty.BillNo, bilty.BillDate, bilty.TruckNo, bilty.Destination,
		bilty.Weight, bilty.Freight, bilty.Diesel, bilty.TotalAdv, bilty.Balance,
		bilty.PumpName, bilty.PaymentOfficer, bilty.DamageIfAny, bilty.Margin,
		bilty.ID,
	)
	if err != nil {
		return classifyError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresBiltyRepo) DeleteBilty(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM bilty WHERE id=$1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
