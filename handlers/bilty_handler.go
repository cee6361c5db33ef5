package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"biltyledger/models"
	"biltyledger/repository"
)

type BiltyHandler struct {
	Repo repository.BiltyRepository
}

// ListBilty returns every record, newest first.
func (h *BiltyHandler) ListBilty(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListBilty()
	if err != nil {
		log.Printf("list bilty: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch bilty records")
		return
	}
	if list == nil {
		list = []*models.Bilty{}
	}
	writeJSON(w, http.StatusOK, list)
}

// CreateBilty inserts a new record. bilty_sl_no and weight must be
// present in the raw body; the weight presence check runs before
// coercion, so a non-numeric weight passes the gate and persists as null.
func (h *BiltyHandler) CreateBilty(w http.ResponseWriter, r *http.Request) {
	var in models.BiltyInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	if in.BiltySlNo == "" || in.Weight.Empty() {
		writeError(w, http.StatusBadRequest, "bilty_sl_no and weight are required")
		return
	}

	bilty := in.ToRecord()
	if err := h.Repo.CreateBilty(bilty); err != nil {
		var conflict *repository.ConflictError
		var missing *repository.MissingColumnError
		switch {
		case errors.As(err, &conflict):
			writeError(w, http.StatusConflict, conflict.Field+" already exists")
		case errors.As(err, &missing):
			writeError(w, http.StatusBadRequest, "missing value for required column "+missing.Column)
		default:
			log.Printf("create bilty: %v", err)
			writeError(w, http.StatusInternalServerError, "failed to create bilty record: "+err.Error())
		}
		return
	}

	writeJSON(w, http.StatusCreated, bilty)
}

// UpdateBilty replaces every field of the record, including to null.
// No required-field check here; create and update intentionally differ.
func (h *BiltyHandler) UpdateBilty(w http.ResponseWriter, r *http.Request, id string) {
	biltyID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid bilty id")
		return
	}

	var in models.BiltyInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	bilty := in.ToRecord()
	bilty.ID = biltyID

	if err := h.Repo.UpdateBilty(bilty); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "bilty record not found")
			return
		}
		log.Printf("update bilty %d: %v", biltyID, err)
		writeError(w, http.StatusInternalServerError, "failed to update bilty record: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, bilty)
}

// DeleteBilty removes the record and responds 204 with no body.
func (h *BiltyHandler) DeleteBilty(w http.ResponseWriter, r *http.Request, id string) {
	biltyID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid bilty id")
		return
	}

	if err := h.Repo.DeleteBilty(biltyID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "bilty record not found")
			return
		}
		log.Printf("delete bilty %d: %v", biltyID, err)
		writeError(w, http.StatusInternalServerError, "failed to delete bilty record")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
