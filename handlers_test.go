package main

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bitbucket.org/candorwt/fieldforce_backend/middlewares"
	"bitbucket.org/candorwt/fieldforce_backend/models"
	"bitbucket.org/candorwt/fieldforce_backend/models/reports"
	"bitbucket.org/candorwt/fieldforce_backend/utils"
	"github.com/gin-gonic/gin"
)

// emptySource satisfies reports.Source without a database.
type emptySource struct{}

func (emptySource) AllInvoices(ctx context.Context) ([]models.Invoice, error) { return nil, nil }
func (emptySource) LineItems(ctx context.Context, invoiceId string) ([]models.InvoiceLineItem, error) {
	return nil, nil
}
func (emptySource) AllAttendance(ctx context.Context) ([]models.AttendanceRecord, error) {
	return nil, nil
}
func (emptySource) AllSalesOrders(ctx context.Context) ([]models.SalesOrder, error) { return nil, nil }

func newReportRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/reports/sales", salesReportHandler())
	r.POST("/reports/attendance", attendanceReportHandler())
	r.POST("/reports/orders", ordersReportHandler())
	r.POST("/reports/export/excel", exportHandler(reports.FormatWorkbook))
	r.POST("/reports/export/pdf", exportHandler(reports.FormatDocument))
	return r
}

func postJSON(r *gin.Engine, path string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestReportHandlersRejectMissingDates(t *testing.T) {
	r := newReportRouter()

	for _, path := range []string{"/reports/sales", "/reports/attendance", "/reports/orders"} {
		w := postJSON(r, path, `{"fromDate":"2024-01-01"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s missing toDate: status = %d, want 400", path, w.Code)
		}
		w = postJSON(r, path, `{}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s missing both dates: status = %d, want 400", path, w.Code)
		}
	}
}

func TestReportHandlersRejectBadDateFormat(t *testing.T) {
	r := newReportRouter()

	w := postJSON(r, "/reports/sales", `{"fromDate":"01-01-2024","toDate":"2024-01-31"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad fromDate: status = %d, want 400", w.Code)
	}
	w = postJSON(r, "/reports/sales", `{"fromDate":"2024-01-01","toDate":"31/01/2024"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad toDate: status = %d, want 400", w.Code)
	}
}

func TestExportHandlerRejectsUnknownType(t *testing.T) {
	r := newReportRouter()

	w := postJSON(r, "/reports/export/excel", `{"type":"weekly","fromDate":"2024-01-01","toDate":"2024-01-31"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown type: status = %d, want 400", w.Code)
	}
	w = postJSON(r, "/reports/export/pdf", `{"fromDate":"2024-01-01","toDate":"2024-01-31"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty type: status = %d, want 400", w.Code)
	}
}

func TestExportHandlerAttachmentHeaders(t *testing.T) {
	saved := reportSource
	reportSource = emptySource{}
	defer func() { reportSource = saved }()

	r := newReportRouter()

	w := postJSON(r, "/reports/export/excel", `{"type":"sales","fromDate":"2024-01-01","toDate":"2024-01-31"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("export status = %d, want 200; body: %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Content-Disposition"); got != "attachment; filename=sales-report.xlsx" {
		t.Errorf("Content-Disposition = %q", got)
	}
	if got := w.Header().Get("Content-Type"); got != reports.ContentTypeWorkbook {
		t.Errorf("Content-Type = %q", got)
	}

	w = postJSON(r, "/reports/export/pdf", `{"type":"orders","fromDate":"2024-01-01","toDate":"2024-01-31"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("pdf export status = %d, want 200; body: %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Content-Disposition"); got != "attachment; filename=orders-report.pdf" {
		t.Errorf("Content-Disposition = %q", got)
	}
	if got := w.Header().Get("Content-Type"); got != reports.ContentTypeDocument {
		t.Errorf("Content-Type = %q", got)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")) {
		t.Error("pdf export body is not a PDF")
	}
}

func newUserRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middlewares.AuthMiddleware())
	r.POST("/users", createUserHandler())
	return r
}

func postJSONWithToken(r *gin.Engine, path string, body string, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateUserRequiresAdmin(t *testing.T) {
	r := newUserRouter()

	w := postJSONWithToken(r, "/users", `{}`, "")
	if w.Code != http.StatusForbidden {
		t.Errorf("no token: status = %d, want 403", w.Code)
	}

	agentToken, err := utils.JwtGenerate(7, string(models.UserRoleAgent), "Asha")
	if err != nil {
		t.Fatalf("JwtGenerate: %v", err)
	}
	w = postJSONWithToken(r, "/users", `{}`, agentToken)
	if w.Code != http.StatusForbidden {
		t.Errorf("agent token: status = %d, want 403", w.Code)
	}
}

func TestCreateUserValidatesInput(t *testing.T) {
	r := newUserRouter()

	adminToken, err := utils.JwtGenerate(1, string(models.UserRoleAdmin), "Admin")
	if err != nil {
		t.Fatalf("JwtGenerate: %v", err)
	}
	w := postJSONWithToken(r, "/users", `{"email":"x@example.com"}`, adminToken)
	if w.Code != http.StatusBadRequest {
		t.Errorf("incomplete body: status = %d, want 400", w.Code)
	}
}

func TestUploadImageRejectsNonImagePayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/products/:id/image", uploadProductImageHandler())

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", "notes.txt")
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := fw.Write([]byte("plain text, not an image")); err != nil {
		t.Fatalf("write part: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/products/1/image", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("text payload: status = %d, want 400", w.Code)
	}
}
