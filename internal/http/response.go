package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	ss "camp-admin/backend/internal/spreadsheet"
	"camp-admin/backend/internal/utils"
)

type APIError struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func Fail(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, APIError{Message: msg})
}

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// WriteXLSX renders data fully before sending headers, so a rendering error
// still becomes a JSON failure.
func WriteXLSX(w http.ResponseWriter, data ss.Data) error {
	var buf bytes.Buffer
	if err := ss.WriteXLSX(&buf, data); err != nil {
		return err
	}

	w.Header().Set("Content-Type", contentTypeXLSX)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", utils.AttachmentName(data.Filename, ".xlsx")))
	w.Header().Set("Content-Length", fmt.Sprint(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, err := buf.WriteTo(w)
	return err
}
