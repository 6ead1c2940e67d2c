package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"eventcollection/internal/delivery/http/helpers"
	"eventcollection/internal/domain"
)

type DatabaseController struct {
	Logger  *slog.Logger
	Service domain.SchemaService
}

func NewDatabaseController(logger *slog.Logger, svc domain.SchemaService) *DatabaseController {
	return &DatabaseController{
		Logger:  logger,
		Service: svc,
	}
}

// ListTables godoc
// @Summary List table names
// @Tags database
// @Produce json
// @Success 200 {object} helpers.APIResponse "data is an array of table names"
// @Router /tables [get]
func (c *DatabaseController) ListTables(w http.ResponseWriter, r *http.Request) {
	tables, err := c.Service.ListTables(r.Context())
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, tables)
}

// ListTableAttributes godoc
// @Summary List column names of a table
// @Tags database
// @Produce json
// @Param tableName path string true "Table name"
// @Success 200 {object} helpers.APIResponse "data is an array of column names"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (unknown table)"
// @Router /tables/{tableName}/attributes [get]
func (c *DatabaseController) ListTableAttributes(w http.ResponseWriter, r *http.Request) {
	tableName := r.PathValue("tableName")
	columns, err := c.Service.ListTableAttributes(r.Context(), tableName)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, columns)
}

// CustomizedTable godoc
// @Summary Project chosen columns of a table
// @Description selectedAttributes is a comma-separated column list. Table and column names are checked against live schema metadata before the query is built.
// @Tags database
// @Produce json
// @Param tableName query string true "Table name"
// @Param selectedAttributes query string true "Comma-separated column names"
// @Success 200 {object} helpers.APIResponse "data is an array of row objects"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (unknown column)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (unknown table)"
// @Router /customized-table [get]
func (c *DatabaseController) CustomizedTable(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	tableName := strings.TrimSpace(q.Get("tableName"))
	raw := strings.TrimSpace(q.Get("selectedAttributes"))
	if tableName == "" || raw == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "tableName and selectedAttributes are required")
		return
	}
	var columns []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			columns = append(columns, part)
		}
	}
	rows, err := c.Service.ProjectTable(r.Context(), tableName, columns)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, rows)
}
