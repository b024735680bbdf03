package survey

import (
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	surveyTypes "github.com/Furquan712/geo-survey/pkg/surveys/types"
)

var indexesForDayReportsCollection = []mongo.IndexModel{
	{
		Keys: bson.D{
			{Key: "templateId", Value: 1},
			{Key: "agentId", Value: 1},
			{Key: "date", Value: 1},
		},
		Options: options.Index().SetName("templateId_agentId_date_1").SetUnique(true),
	},
}

func (dbService *SurveyDBService) CreateIndexesForDayReportsCollection() error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionDayReports().Indexes().CreateMany(ctx, indexesForDayReportsCollection)
	return err
}

func (dbService *SurveyDBService) DropIndexesForDayReportsCollection(dropAll bool) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	if dropAll {
		_, err := dbService.collectionDayReports().Indexes().DropAll(ctx)
		if err != nil {
			slog.Error("Error dropping all indexes for dayReports", slog.String("error", err.Error()))
		}
		return
	}
	for _, index := range indexesForDayReportsCollection {
		indexName := *index.Options.Name
		_, err := dbService.collectionDayReports().Indexes().DropOne(ctx, indexName)
		if err != nil {
			slog.Error("Error dropping index for dayReports", slog.String("error", err.Error()), slog.String("indexName", indexName))
		}
	}
}

// GetDayReport fetches the report for the composite key. Returns
// mongo.ErrNoDocuments when no report was saved for that day yet.
func (dbService *SurveyDBService) GetDayReport(templateID string, agentID string, date string) (*surveyTypes.DayReport, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{
		"templateId": templateID,
		"agentId":    agentID,
		"date":       date,
	}
	var report surveyTypes.DayReport
	err := dbService.collectionDayReports().FindOne(ctx, filter).Decode(&report)
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// SaveDayReport upserts on (templateId, agentId, date): the first save for a
// day inserts, later saves overwrite the report text. Last writer wins.
func (dbService *SurveyDBService) SaveDayReport(report *surveyTypes.DayReport) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{
		"templateId": report.TemplateID,
		"agentId":    report.AgentID,
		"date":       report.Date,
	}
	update := bson.M{
		"$set": bson.M{
			"adminId":    report.AdminID,
			"formName":   report.FormName,
			"reportData": report.ReportData,
			"updatedAt":  time.Now(),
		},
		"$setOnInsert": bson.M{
			"createdAt": time.Now(),
		},
	}
	opts := options.Update().SetUpsert(true)

	_, err := dbService.collectionDayReports().UpdateOne(ctx, filter, update, opts)
	return err
}
