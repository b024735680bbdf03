package survey

import (
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	surveyTypes "github.com/Furquan712/geo-survey/pkg/surveys/types"
)

// AgentIDAll is the sentinel selector meaning "no agent filter" in submission
// queries. It is not a real identity.
const AgentIDAll = "all"

var indexesForSubmissionsCollection = []mongo.IndexModel{
	{
		Keys: bson.D{
			{Key: "adminId", Value: 1},
			{Key: "templateId", Value: 1},
			{Key: "agentId", Value: 1},
		},
		Options: options.Index().SetName("adminId_templateId_agentId_1"),
	},
	{
		Keys: bson.D{
			{Key: "templateId", Value: 1},
			{Key: "agentId", Value: 1},
		},
		Options: options.Index().SetName("templateId_agentId_1"),
	},
}

func (dbService *SurveyDBService) CreateIndexesForSubmissionsCollection() error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionSurveySubmissions().Indexes().CreateMany(ctx, indexesForSubmissionsCollection)
	return err
}

func (dbService *SurveyDBService) DropIndexesForSubmissionsCollection(dropAll bool) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	if dropAll {
		_, err := dbService.collectionSurveySubmissions().Indexes().DropAll(ctx)
		if err != nil {
			slog.Error("Error dropping all indexes for surveySubmissions", slog.String("error", err.Error()))
		}
		return
	}
	for _, index := range indexesForSubmissionsCollection {
		indexName := *index.Options.Name
		_, err := dbService.collectionSurveySubmissions().Indexes().DropOne(ctx, indexName)
		if err != nil {
			slog.Error("Error dropping index for surveySubmissions", slog.String("error", err.Error()), slog.String("indexName", indexName))
		}
	}
}

// AddSurveySubmission appends one immutable submission record.
func (dbService *SurveyDBService) AddSurveySubmission(submission *surveyTypes.Submission) (*surveyTypes.Submission, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	submission.CreatedAt = time.Now()
	res, err := dbService.collectionSurveySubmissions().InsertOne(ctx, submission)
	if err != nil {
		return nil, err
	}
	submission.ID = res.InsertedID.(primitive.ObjectID)
	return submission, nil
}

// count of submissions by one agent for one template
func (dbService *SurveyDBService) CountSubmissionsForAgent(templateID string, agentID string) (int64, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{
		"templateId": templateID,
		"agentId":    agentID,
	}
	return dbService.collectionSurveySubmissions().CountDocuments(ctx, filter)
}

var projectionForSubmissionViews = bson.D{
	primitive.E{Key: "formData", Value: 1},
	primitive.E{Key: "location", Value: 1},
	primitive.E{Key: "date", Value: 1},
}

// FindSubmissions returns the reduced submission views for an admin's
// template. agentID == AgentIDAll drops the agent filter.
func (dbService *SurveyDBService) FindSubmissions(adminID string, templateID string, agentID string) (submissions []surveyTypes.SubmissionView, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{
		"adminId":    adminID,
		"templateId": templateID,
	}
	if agentID != AgentIDAll {
		filter["agentId"] = agentID
	}

	opts := options.Find()
	opts.SetProjection(projectionForSubmissionViews)

	cursor, err := dbService.collectionSurveySubmissions().Find(ctx, filter, opts)
	if err != nil {
		return submissions, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &submissions)
	return submissions, err
}

// GetAgentIDsWithSubmissions returns the distinct agent ids that have at
// least one submission owned by the admin. The caller joins them with the
// user profiles; agents without submissions do not appear.
func (dbService *SurveyDBService) GetAgentIDsWithSubmissions(adminID string) (agentIDs []string, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	res, err := dbService.collectionSurveySubmissions().Distinct(ctx, "agentId", bson.M{"adminId": adminID})
	if err != nil {
		return agentIDs, err
	}
	agentIDs = make([]string, 0, len(res))
	for _, r := range res {
		id, ok := r.(string)
		if !ok {
			slog.Warn("unexpected agentId type in submissions", slog.Any("value", r))
			continue
		}
		agentIDs = append(agentIDs, id)
	}
	return agentIDs, nil
}

// SurveyWithSubmissions is one row of the admin-facing survey report: a
// (templateId, formName) pair that was actually submitted to.
type SurveyWithSubmissions struct {
	TemplateID string `bson:"templateId" json:"templateId"`
	FormName   string `bson:"formName" json:"formName"`
}

// GetSurveysWithSubmissions groups the admin's submissions by template.
// Templates with zero submissions are invisible here.
func (dbService *SurveyDBService) GetSurveysWithSubmissions(adminID string) (surveys []SurveyWithSubmissions, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"adminId": adminID}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":      "$templateId",
			"formName": bson.M{"$first": "$formName"},
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"templateId": "$_id",
			"formName":   1,
			"_id":        0,
		}}},
	}

	cursor, err := dbService.collectionSurveySubmissions().Aggregate(ctx, pipeline)
	if err != nil {
		return surveys, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &surveys)
	return surveys, err
}
