package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"biltyledger/repository"
	"biltyledger/utils"
)

type PDFHandler struct {
	Repo        repository.BiltyRepository
	CompanyName string
	SavePath    string
}

// BiltySlipPDF renders a printable slip for one record and uploads it to
// R2. Without R2 credentials the slip is kept on local disk instead.
func (h *PDFHandler) BiltySlipPDF(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get("id")
	if idStr == "" {
		writeError(w, http.StatusBadRequest, "missing bilty id")
		return
	}
	biltyID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid bilty id")
		return
	}

	bilty, err := h.Repo.GetBiltyByID(biltyID)
	if err != nil {
		log.Printf("fetch bilty %d for pdf: %v", biltyID, err)
		writeError(w, http.StatusInternalServerError, "failed to fetch bilty record")
		return
	}
	if bilty == nil {
		writeError(w, http.StatusNotFound, "bilty record not found")
		return
	}

	pdfBytes, err := utils.GenerateBiltySlip(bilty, h.CompanyName)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate PDF: "+err.Error())
		return
	}

	filename := fmt.Sprintf("bilty_%d_%d.pdf", biltyID, time.Now().Unix())

	fileRef, err := utils.UploadToR2(pdfBytes, filename)
	if errors.Is(err, utils.ErrR2NotConfigured) {
		saveDir := h.SavePath
		if saveDir == "" {
			saveDir = "./pdfs"
		}
		if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
			writeError(w, http.StatusInternalServerError, "failed to create save directory: "+err.Error())
			return
		}
		savePath := filepath.Join(saveDir, filename)
		if err := os.WriteFile(savePath, pdfBytes, 0644); err != nil {
			writeError(w, http.StatusInternalServerError, "failed to save PDF: "+err.Error())
			return
		}
		fileRef = filename
	} else if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to upload PDF: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"file":    fileRef,
	})
}
