package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/ukaji3/escala-go/internal/config"
	"github.com/ukaji3/escala-go/pkg/escala"
	"github.com/ukaji3/escala-go/pkg/escala/models"
	"github.com/ukaji3/escala-go/pkg/escala/output"
)

type ExtractResponse struct {
	BookName  string `json:"book_name"`
	SheetName string `json:"sheet_name"`
	DataRange string `json:"data_range,omitempty"`
	Blocks    int    `json:"blocks"`
	Turno     string `json:"turno"`
	Count     int    `json:"count"`

	Records []models.Record `json:"records"`
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	log := s.log(r)

	limit := s.Server.MaxUploadMB
	if limit <= 0 {
		limit = config.Default().Server.MaxUploadMB
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit<<20)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid upload: %w", err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("missing file: %w", err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("failed to read upload: %w", err))
		return
	}

	turno := r.FormValue("turno")
	if turno == "" {
		turno = s.Output.Turno
	}
	if !output.ValidTurno(turno) {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid turno %q (must be %s or %s)", turno, output.TurnoNoturno, output.TurnoDiurno))
		return
	}

	format := output.FormatJSON
	if v := r.FormValue("format"); v != "" {
		if format, err = output.ParseFormat(v); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	opts, err := s.Options(log)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if sheet := r.FormValue("sheet"); sheet != "" {
		opts.Sheet = sheet
	}

	schedule, err := escala.ExtractBytes(header.Filename, data, opts)
	if err != nil {
		log.Warn("extraction failed", "file", header.Filename, "error", err)

		var extErr *escala.ExtractionError
		switch {
		case errors.Is(err, escala.ErrInvalidFormat):
			writeError(w, http.StatusBadRequest, err)
		case errors.As(err, &extErr) && extErr.Component == "sheet":
			writeError(w, http.StatusBadRequest, err)
		default:
			writeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	if err := escala.CheckRecords(schedule); err != nil {
		writeError(w, http.StatusUnprocessableEntity, fmt.Errorf("%w: check the uploaded file", err))
		return
	}

	schedule.Records = output.ApplyTurno(schedule.Records, turno)

	if format == output.FormatJSON {
		writeJson(w, ExtractResponse{
			BookName:  schedule.BookName,
			SheetName: schedule.SheetName,
			DataRange: schedule.DataRange,
			Blocks:    schedule.BlockCount,
			Turno:     turno,
			Count:     len(schedule.Records),

			Records: schedule.Records,
		})
		return
	}

	name := output.FileName(s.Output.FilePrefix, s.now(), format)

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))

	if err := output.Write(w, schedule, format, false); err != nil {
		log.Error("failed to write export", "format", format, "error", err)
	}
}
