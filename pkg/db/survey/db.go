package survey

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Furquan712/geo-survey/pkg/db"
)

// collection names
const (
	COLLECTION_NAME_SURVEY_TEMPLATES   = "surveyTemplates"
	COLLECTION_NAME_SURVEY_SUBMISSIONS = "surveySubmissions"
	COLLECTION_NAME_DAY_REPORTS        = "dayReports"
)

type SurveyDBService struct {
	DBClient        *mongo.Client
	timeout         int
	noCursorTimeout bool
	DBNamePrefix    string
}

func NewSurveyDBService(configs db.DBConfig) (*SurveyDBService, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	defer cancel()

	dbClient, err := mongo.Connect(ctx,
		options.Client().ApplyURI(configs.URI),
		options.Client().SetMaxConnIdleTime(time.Duration(configs.IdleConnTimeout)*time.Second),
		options.Client().SetMaxPoolSize(configs.MaxPoolSize),
	)

	if err != nil {
		return nil, err
	}

	ctx, conCancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	err = dbClient.Ping(ctx, nil)
	defer conCancel()

	if err != nil {
		return nil, err
	}

	surveyDBSc := &SurveyDBService{
		DBClient:        dbClient,
		timeout:         configs.Timeout,
		noCursorTimeout: configs.NoCursorTimeout,
		DBNamePrefix:    configs.DBNamePrefix,
	}

	if configs.RunIndexCreation {
		if err := surveyDBSc.ensureIndexes(); err != nil {
			slog.Error("Error ensuring indexes for survey DB", slog.String("error", err.Error()))
		}
	}

	return surveyDBSc, nil
}

func (dbService *SurveyDBService) getDBName() string {
	return dbService.DBNamePrefix + "geosurvey_surveyDB"
}

func (dbService *SurveyDBService) collectionSurveyTemplates() *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName()).Collection(COLLECTION_NAME_SURVEY_TEMPLATES)
}

func (dbService *SurveyDBService) collectionSurveySubmissions() *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName()).Collection(COLLECTION_NAME_SURVEY_SUBMISSIONS)
}

func (dbService *SurveyDBService) collectionDayReports() *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName()).Collection(COLLECTION_NAME_DAY_REPORTS)
}

func (dbService *SurveyDBService) getContext() (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(dbService.timeout)*time.Second)
}

func (dbService *SurveyDBService) ensureIndexes() error {
	slog.Debug("Ensuring indexes for survey DB")

	if err := dbService.CreateIndexesForSurveyTemplatesCollection(); err != nil {
		slog.Error("Error creating indexes for surveyTemplates", slog.String("error", err.Error()))
	}
	if err := dbService.CreateIndexesForSubmissionsCollection(); err != nil {
		slog.Error("Error creating indexes for surveySubmissions", slog.String("error", err.Error()))
	}
	if err := dbService.CreateIndexesForDayReportsCollection(); err != nil {
		slog.Error("Error creating indexes for dayReports", slog.String("error", err.Error()))
	}
	return nil
}

// ListIndexes collects the current index definitions per collection.
func (dbService *SurveyDBService) ListIndexes() (map[string][]bson.M, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	result := map[string][]bson.M{}
	for name, collection := range map[string]*mongo.Collection{
		COLLECTION_NAME_SURVEY_TEMPLATES:   dbService.collectionSurveyTemplates(),
		COLLECTION_NAME_SURVEY_SUBMISSIONS: dbService.collectionSurveySubmissions(),
		COLLECTION_NAME_DAY_REPORTS:        dbService.collectionDayReports(),
	} {
		indexes, err := db.ListCollectionIndexes(ctx, collection)
		if err != nil {
			return nil, err
		}
		result[name] = indexes
	}
	return result, nil
}
