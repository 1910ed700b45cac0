package config

import (
	"encoding/json"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/23WH1A0515/Arogyasetu/models"
)

// Config holds the project config values
type Config struct {
	Url           string
	DatabaseName  string
	BaseUrl       string
	Port          string
	Env           string
	DataDir       string
	SeedDisabled  bool
	OpenAIKey     string
	OpenAIBaseUrl string
	OpenAIModel   string
}

// New sets up all config related services
func New() *Config {

	env := os.Getenv("APP_ENV")

	//setup zap logger and replace default logger
	logger, err := setLogger(env)
	if err != nil {
		logger = zap.NewExample()
	}
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}

	return &Config{
		Url:           os.Getenv("DB_URI"),
		DatabaseName:  os.Getenv("DB_NAME"),
		BaseUrl:       os.Getenv("BASE_URL"),
		Port:          os.Getenv("PORT"),
		Env:           env,
		DataDir:       dataDir,
		SeedDisabled:  os.Getenv("SEED_DISABLED") == "true",
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseUrl: os.Getenv("OPENAI_BASE_URL"),
		OpenAIModel:   os.Getenv("OPENAI_MODEL"),
	}

}

func setLogger(env string) (*zap.Logger, error) {
	switch env {
	case "production":
		return zap.NewProduction()
	case "development":
		return zap.NewDevelopment()
	default:
		return zap.NewExample(), nil
	}
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	b, _ := json.Marshal(models.ErrorMessageResponse{Response: models.MessageError{Message: message, Error: err.Error()}})
	w.WriteHeader(httpStatusCode)
	w.Write(b)
}
