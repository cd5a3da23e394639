package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/escala-go/internal/config"
)

func newTestServer() *Server {
	s := New(config.Default(), nil)
	s.now = func() time.Time { return time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC) }
	return s
}

func workbook(t *testing.T, cells map[string]any) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for ref, v := range cells {
		require.NoError(t, f.SetCellValue("Sheet1", ref, v))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func uploadRequest(t *testing.T, data []byte, fields map[string]string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	if data != nil {
		fw, err := mw.CreateFormFile("file", "escala.xlsx")
		require.NoError(t, err)
		_, err = fw.Write(data)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/extract", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

var scheduleCells = map[string]any{
	"B5":  "T123",
	"C5":  "ABC1234",
	"B7":  "MOTORISTA",
	"B8":  "JOAO SILVA",
	"B10": "12345",
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestExtractJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	req := uploadRequest(t, workbook(t, scheduleCells), map[string]string{"turno": "Diurno"})
	newTestServer().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp ExtractResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "escala.xlsx", resp.BookName)
	assert.Equal(t, "Diurno", resp.Turno)
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Records, 1)
	assert.Equal(t, "T123", resp.Records[0].Frota)
	assert.Equal(t, "ABC1234", resp.Records[0].Placa)
	assert.Equal(t, "12345", resp.Records[0].Rota)
	assert.Equal(t, "JOAO SILVA", resp.Records[0].Motorista)
	assert.Equal(t, "Diurno", resp.Records[0].Turno)
}

func TestExtractXLSX(t *testing.T) {
	rec := httptest.NewRecorder()
	req := uploadRequest(t, workbook(t, scheduleCells), map[string]string{"format": "xlsx"})
	newTestServer().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, `attachment; filename="ESCALA_FILTRADA_17-10-2026.xlsx"`, rec.Header().Get("Content-Disposition"))

	f, err := excelize.OpenReader(rec.Body)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Escala Filtrada")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Noturno", rows[1][6])
}

func TestExtractCSV(t *testing.T) {
	rec := httptest.NewRecorder()
	req := uploadRequest(t, workbook(t, scheduleCells), map[string]string{"format": "csv", "turno": "Noturno"})
	newTestServer().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Frota,Placa,Rota,Motorista,Ajudante 1,Ajudante 2,Turno,Largada\nT123,ABC1234,12345,JOAO SILVA,,,Noturno,\n", rec.Body.String())
}

func TestExtractErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		fields map[string]string
		code   int
	}{
		{"missing file", nil, nil, http.StatusBadRequest},
		{"not a workbook", []byte("Frota;Placa"), nil, http.StatusBadRequest},
		{"bad turno", workbook(t, scheduleCells), map[string]string{"turno": "Vespertino"}, http.StatusBadRequest},
		{"bad format", workbook(t, scheduleCells), map[string]string{"format": "pdf"}, http.StatusBadRequest},
		{"unknown sheet", workbook(t, scheduleCells), map[string]string{"sheet": "Plan9"}, http.StatusBadRequest},
		{"no blocks", workbook(t, map[string]any{"A1": "sem dados"}), nil, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newTestServer().ServeHTTP(rec, uploadRequest(t, tt.data, tt.fields))

			assert.Equal(t, tt.code, rec.Code, rec.Body.String())

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestExtractUploadLimit(t *testing.T) {
	s := newTestServer()
	s.Server.MaxUploadMB = 1

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, uploadRequest(t, bytes.Repeat([]byte("x"), 2<<20), nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExtractUploadLimitUnset(t *testing.T) {
	s := newTestServer()
	s.Server.MaxUploadMB = 0

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, uploadRequest(t, workbook(t, scheduleCells), nil))

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}
