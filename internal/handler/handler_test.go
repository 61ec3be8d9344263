package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/JoaquinSangiorgio/proyectoInmoweb/internal/model"
	"github.com/JoaquinSangiorgio/proyectoInmoweb/internal/repository"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestEnv opens a fresh in-memory database, wires the repositories and
// returns an echo instance for building request contexts
func newTestEnv(t *testing.T) *echo.Echo {
	t.Helper()

	dsn := fmt.Sprintf("file:handler_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Cliente{}, &model.Propiedad{}, &model.Pago{}))

	repository.Init(db, 5*time.Second)
	return echo.New()
}

// jsonRequest builds an echo context carrying a JSON body
func jsonRequest(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var payload []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

// jsonNumberString renders a decoded JSON id back as a path parameter
func jsonNumberString(v interface{}) string {
	return strconv.FormatFloat(v.(float64), 'f', -1, 64)
}
