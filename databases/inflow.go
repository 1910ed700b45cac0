package databases

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/23WH1A0515/Arogyasetu/models"
)

const inflowName = "patient_inflow"

// InflowDatabase contains the methods to use with the patient inflow database
type InflowDatabase interface {
	Find(ctx context.Context, filter interface{}) ([]models.InflowRecord, error)
	Latest(ctx context.Context) (*models.InflowRecord, error)
	History(ctx context.Context, limit, page int) ([]models.InflowRecord, error)
	HospitalHistory(ctx context.Context, hospitalID string, hours int) ([]models.InflowRecord, error)
	Recent(ctx context.Context, hours int) ([]models.InflowRecord, error)
	Summary(ctx context.Context, hours int) ([]models.InflowSummary, error)
	InsertMany(ctx context.Context, records []models.InflowRecord) (int, error)
	Count(ctx context.Context) (int64, error)
}

type inflowDatabase struct {
	db DatabaseHelper
}

// NewInflowDatabase initializes a new instance of inflow database with the provided db connection
func NewInflowDatabase(db DatabaseHelper) InflowDatabase {
	return &inflowDatabase{db: db}
}

func (i *inflowDatabase) Find(ctx context.Context, filter interface{}) ([]models.InflowRecord, error) {
	var records []models.InflowRecord
	err := i.db.Collection(inflowName).Find(ctx, filter).Decode(&records)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (i *inflowDatabase) Latest(ctx context.Context) (*models.InflowRecord, error) {
	record := &models.InflowRecord{}
	opts := options.FindOne().SetSort(bson.M{"timestamp": -1})
	err := i.db.Collection(inflowName).FindOne(ctx, bson.M{}, opts).Decode(&record)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (i *inflowDatabase) History(ctx context.Context, limit, page int) ([]models.InflowRecord, error) {
	var records []models.InflowRecord
	opts := newMongoPaginate(limit, page).getPaginatedOpts().SetSort(bson.M{"timestamp": -1})
	err := i.db.Collection(inflowName).Find(ctx, bson.M{}, opts).Decode(&records)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (i *inflowDatabase) HospitalHistory(ctx context.Context, hospitalID string, hours int) ([]models.InflowRecord, error) {
	var records []models.InflowRecord
	cutoff := time.Now().UTC().Add(-time.Duration(hours) * time.Hour)
	filter := bson.M{
		"hospital_id": hospitalID,
		"timestamp":   bson.M{"$gte": cutoff},
	}
	opts := options.Find().SetSort(bson.M{"timestamp": 1})
	err := i.db.Collection(inflowName).Find(ctx, filter, opts).Decode(&records)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (i *inflowDatabase) Recent(ctx context.Context, hours int) ([]models.InflowRecord, error) {
	var records []models.InflowRecord
	cutoff := time.Now().UTC().Add(-time.Duration(hours) * time.Hour)
	filter := bson.M{"timestamp": bson.M{"$gte": cutoff}}
	opts := options.Find().SetSort(bson.M{"timestamp": 1})
	err := i.db.Collection(inflowName).Find(ctx, filter, opts).Decode(&records)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (i *inflowDatabase) Summary(ctx context.Context, hours int) ([]models.InflowSummary, error) {
	var summaries []models.InflowSummary
	cutoff := time.Now().UTC().Add(-time.Duration(hours) * time.Hour)
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"timestamp": bson.M{"$gte": cutoff}}}},
		{{Key: "$group", Value: bson.M{
			"_id":           "$hospital_id",
			"total_count":   bson.M{"$sum": "$count"},
			"average_count": bson.M{"$avg": "$count"},
			"samples":       bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
	cursor, err := i.db.Collection(inflowName).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	err = cursor.Decode(&summaries)
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

func (i *inflowDatabase) InsertMany(ctx context.Context, records []models.InflowRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}
	docs := make([]interface{}, 0, len(records))
	for _, r := range records {
		docs = append(docs, r)
	}
	result, err := i.db.Collection(inflowName).InsertMany(ctx, docs)
	if err != nil {
		return 0, err
	}
	return len(result.InsertedIDs()), nil
}

func (i *inflowDatabase) Count(ctx context.Context) (int64, error) {
	return i.db.Collection(inflowName).CountDocuments(ctx, bson.M{})
}
