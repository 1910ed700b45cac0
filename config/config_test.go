package config

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/23WH1A0515/Arogyasetu/models"
)

func TestNew(t *testing.T) {
	os.Setenv("DB_URI", "mongodb://127.0.0.1:27017")
	os.Setenv("DB_NAME", "test")
	conf := New()

	assert.NotEmpty(t, conf)
	assert.Equal(t, "mongodb://127.0.0.1:27017", conf.Url)
	assert.Equal(t, "test", conf.DatabaseName)
}

func TestNewDefaultsDataDir(t *testing.T) {
	os.Unsetenv("DATA_DIR")
	conf := New()

	assert.Equal(t, "./data", conf.DataDir)
}

func TestNewSeedDisabled(t *testing.T) {
	os.Setenv("SEED_DISABLED", "true")
	defer os.Unsetenv("SEED_DISABLED")
	conf := New()

	assert.True(t, conf.SeedDisabled)
}

func TestErrorStatus(t *testing.T) {
	rr := httptest.NewRecorder()

	ErrorStatus("error it borked", http.StatusBadRequest, rr, errors.New("bad request"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	expected := models.ErrorMessageResponse{Response: models.MessageError{Message: "error it borked", Error: "bad request"}}
	b, _ := json.Marshal(expected)
	assert.Equal(t, string(b), rr.Body.String())
}

func TestSetLoggerSetsDevelopmentLogger(t *testing.T) {
	l, err := setLogger("development")
	assert.NoError(t, err)
	assert.True(t, l.Core().Enabled(1))
}

func TestSetLoggerSetsProductionLogger(t *testing.T) {
	l, err := setLogger("production")
	assert.NoError(t, err)
	assert.True(t, l.Core().Enabled(2))
}

func TestSetLoggerSetsLocalLogger(t *testing.T) {
	l, err := setLogger("local")
	assert.NoError(t, err)
	assert.True(t, l.Core().Enabled(0))
}
