package databases_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/23WH1A0515/Arogyasetu/databases"
	"github.com/23WH1A0515/Arogyasetu/databases/mocks"
	"github.com/23WH1A0515/Arogyasetu/models"
)

func TestGenerateMockInflowShape(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	at := time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC) // Monday noon

	records := databases.GenerateMockInflow([]string{"H001", "H002"}, at, at, rng)

	assert.Len(t, records, 2)
	departments := map[string]bool{
		"Emergency": true, "General": true, "ICU": true,
		"Pediatrics": true, "Cardiology": true, "Orthopedics": true,
	}
	for _, r := range records {
		assert.Equal(t, at, r.Timestamp)
		assert.GreaterOrEqual(t, r.Count, 1)
		assert.GreaterOrEqual(t, r.SeverityAvg, 1.5)
		assert.LessOrEqual(t, r.SeverityAvg, 4.0)
		assert.True(t, departments[r.Department], "unknown department %q", r.Department)
	}
	assert.Equal(t, "H001", records[0].HospitalID)
	assert.Equal(t, "H002", records[1].HospitalID)
}

func TestGenerateMockInflowHourlyInclusive(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	from := time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)
	to := from.Add(3 * time.Hour)

	records := databases.GenerateMockInflow([]string{"H001", "H002"}, from, to, rng)

	// 4 hours inclusive, 2 hospitals each
	assert.Len(t, records, 8)
	assert.Equal(t, from, records[0].Timestamp)
	assert.Equal(t, to, records[len(records)-1].Timestamp)
}

func TestGenerateMockInflowDaytimeBusierThanNight(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	day := time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC)
	night := time.Date(2025, 1, 6, 3, 0, 0, 0, time.UTC)

	var daySum, nightSum int
	for i := 0; i < 200; i++ {
		daySum += databases.GenerateMockInflow([]string{"H001"}, day, day, rng)[0].Count
		nightSum += databases.GenerateMockInflow([]string{"H001"}, night, night, rng)[0].Count
	}

	assert.Greater(t, daySum, nightSum)

	// night band tops out well below the daytime band
	for i := 0; i < 50; i++ {
		r := databases.GenerateMockInflow([]string{"H001"}, night, night, rng)[0]
		assert.LessOrEqual(t, r.Count, 9)
	}
}

func TestGenerateMockInflowWeekendDamping(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	monday := time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC)
	saturday := time.Date(2025, 1, 4, 12, 0, 0, 0, time.UTC)

	var mondaySum, saturdaySum int
	for i := 0; i < 300; i++ {
		mondaySum += databases.GenerateMockInflow([]string{"H001"}, monday, monday, rng)[0].Count
		saturdaySum += databases.GenerateMockInflow([]string{"H001"}, saturday, saturday, rng)[0].Count
	}

	assert.Greater(t, mondaySum, saturdaySum)
}

func TestGenerateMockInflowDeterministic(t *testing.T) {
	from := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	first := databases.GenerateMockInflow([]string{"H001", "H002"}, from, to, rand.New(rand.NewSource(99)))
	second := databases.GenerateMockInflow([]string{"H001", "H002"}, from, to, rand.New(rand.NewSource(99)))

	assert.Equal(t, first, second)
}

func TestGenerateMockInflowNeverBelowOne(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	// weekend night is the lowest possible band
	at := time.Date(2025, 1, 4, 3, 0, 0, 0, time.UTC) // Saturday 03:00

	for i := 0; i < 200; i++ {
		r := databases.GenerateMockInflow([]string{"H001"}, at, at, rng)[0]
		assert.GreaterOrEqual(t, r.Count, 1)
	}
}

func TestEnsureSeededFreshCollection(t *testing.T) {
	inflowDB := &mocks.InflowDatabase{}

	inflowDB.On("Count", mock.Anything).Return(int64(0), nil)
	inflowDB.On("InsertMany", mock.Anything, mock.Anything).
		Return(338, nil).
		Run(func(args mock.Arguments) {
			records := args.Get(1).([]models.InflowRecord)
			// 7 days of hourly records, endpoints included, two hospitals
			assert.Len(t, records, 169*2)
		})

	inserted, err := databases.EnsureSeeded(context.Background(), inflowDB, []string{"H001", "H002"}, rand.New(rand.NewSource(1)))

	assert.NoError(t, err)
	assert.Equal(t, 338, inserted)
	inflowDB.AssertNotCalled(t, "Latest", mock.Anything)
}

func TestEnsureSeededUpToDate(t *testing.T) {
	inflowDB := &mocks.InflowDatabase{}

	inflowDB.On("Count", mock.Anything).Return(int64(500), nil)
	inflowDB.On("Latest", mock.Anything).
		Return(&models.InflowRecord{HospitalID: "H001", Timestamp: time.Now().UTC()}, nil)

	inserted, err := databases.EnsureSeeded(context.Background(), inflowDB, []string{"H001"}, rand.New(rand.NewSource(1)))

	assert.NoError(t, err)
	assert.Zero(t, inserted)
	inflowDB.AssertNotCalled(t, "InsertMany", mock.Anything, mock.Anything)
}

func TestEnsureSeededTopsUpGap(t *testing.T) {
	inflowDB := &mocks.InflowDatabase{}

	inflowDB.On("Count", mock.Anything).Return(int64(500), nil)
	inflowDB.On("Latest", mock.Anything).
		Return(&models.InflowRecord{HospitalID: "H001", Timestamp: time.Now().UTC().Add(-3 * time.Hour)}, nil)
	inflowDB.On("InsertMany", mock.Anything, mock.Anything).
		Return(3, nil).
		Run(func(args mock.Arguments) {
			records := args.Get(1).([]models.InflowRecord)
			assert.Len(t, records, 3)
		})

	inserted, err := databases.EnsureSeeded(context.Background(), inflowDB, []string{"H001"}, rand.New(rand.NewSource(1)))

	assert.NoError(t, err)
	assert.Equal(t, 3, inserted)
}

func TestEnsureSeededCountError(t *testing.T) {
	inflowDB := &mocks.InflowDatabase{}

	inflowDB.On("Count", mock.Anything).Return(int64(0), errors.New("mocked-error"))

	inserted, err := databases.EnsureSeeded(context.Background(), inflowDB, []string{"H001"}, rand.New(rand.NewSource(1)))

	assert.Zero(t, inserted)
	assert.EqualError(t, err, "mocked-error")
}

func TestEnsureSeededInsertError(t *testing.T) {
	inflowDB := &mocks.InflowDatabase{}

	inflowDB.On("Count", mock.Anything).Return(int64(0), nil)
	inflowDB.On("InsertMany", mock.Anything, mock.Anything).Return(0, errors.New("mocked-error"))

	inserted, err := databases.EnsureSeeded(context.Background(), inflowDB, []string{"H001"}, rand.New(rand.NewSource(1)))

	assert.Zero(t, inserted)
	assert.EqualError(t, err, "mocked-error")
}
