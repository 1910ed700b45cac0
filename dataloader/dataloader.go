// Package dataloader reads the city fixture files the analysis runs over.
package dataloader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/23WH1A0515/Arogyasetu/models"
)

// Fixture file names under the data directory.
const (
	hospitalsFile = "hospitals.json"
	eventsFile    = "events.json"
	pollutionFile = "pollution.json"
)

// defaultAQI is the stand-in reading when no pollution feed exists.
const defaultAQI = 100

// Loader reads hospitals, events and pollution snapshots from a data
// directory. A missing file degrades to a documented default; a malformed
// file is an error the caller must handle.
type Loader struct {
	dir string
}

// New returns a Loader rooted at dir.
func New(dir string) *Loader {
	return &Loader{dir: dir}
}

// Hospitals reads the hospital registry. A missing file yields an empty
// registry.
func (l *Loader) Hospitals() ([]models.Hospital, error) {
	var hospitals []models.Hospital
	found, err := l.read(hospitalsFile, &hospitals)
	if err != nil {
		return nil, err
	}
	if !found || hospitals == nil {
		return []models.Hospital{}, nil
	}
	return hospitals, nil
}

// Events reads the scheduled events feed. A missing file yields no events.
func (l *Loader) Events() ([]models.Event, error) {
	var events []models.Event
	found, err := l.read(eventsFile, &events)
	if err != nil {
		return nil, err
	}
	if !found || events == nil {
		return []models.Event{}, nil
	}
	return events, nil
}

// Pollution reads the air-quality snapshot. A missing file yields the
// default city-wide AQI with no zone detail.
func (l *Loader) Pollution() (*models.PollutionReading, error) {
	var reading models.PollutionReading
	found, err := l.read(pollutionFile, &reading)
	if err != nil {
		return nil, err
	}
	if !found {
		return &models.PollutionReading{AverageAQI: defaultAQI, Zones: []models.PollutionZone{}}, nil
	}
	return &reading, nil
}

// read decodes one fixture into v. The bool reports whether the file
// existed at all.
func (l *Loader) read(name string, v interface{}) (bool, error) {
	path := filepath.Join(l.dir, name)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		zap.S().Warnw("fixture file missing, using defaults", "path", path)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("parse %s: %w", name, err)
	}
	return true, nil
}
