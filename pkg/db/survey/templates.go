package survey

import (
	"errors"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	surveyTypes "github.com/Furquan712/geo-survey/pkg/surveys/types"
)

// ErrTemplateNotOwned is returned when no template matches (templateId,
// adminId). Deliberately the same whether the template does not exist or
// belongs to another admin.
var ErrTemplateNotOwned = errors.New("no update happened. Check if the template exists and belongs to you")

var indexesForSurveyTemplatesCollection = []mongo.IndexModel{
	{
		Keys: bson.D{
			{Key: "templateId", Value: 1},
		},
		Options: options.Index().SetName("templateId_1").SetUnique(true),
	},
	{
		Keys: bson.D{
			{Key: "name", Value: 1},
		},
		Options: options.Index().SetName("name_1").SetUnique(true),
	},
	{
		Keys: bson.D{
			{Key: "assignedAgents", Value: 1},
		},
		Options: options.Index().SetName("assignedAgents_1"),
	},
	{
		Keys: bson.D{
			{Key: "adminId", Value: 1},
		},
		Options: options.Index().SetName("adminId_1"),
	},
}

func (dbService *SurveyDBService) CreateIndexesForSurveyTemplatesCollection() error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionSurveyTemplates().Indexes().CreateMany(ctx, indexesForSurveyTemplatesCollection)
	return err
}

func (dbService *SurveyDBService) DropIndexesForSurveyTemplatesCollection(dropAll bool) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	if dropAll {
		_, err := dbService.collectionSurveyTemplates().Indexes().DropAll(ctx)
		if err != nil {
			slog.Error("Error dropping all indexes for surveyTemplates", slog.String("error", err.Error()))
		}
		return
	}
	for _, index := range indexesForSurveyTemplatesCollection {
		indexName := *index.Options.Name
		_, err := dbService.collectionSurveyTemplates().Indexes().DropOne(ctx, indexName)
		if err != nil {
			slog.Error("Error dropping index for surveyTemplates", slog.String("error", err.Error()), slog.String("indexName", indexName))
		}
	}
}

func (dbService *SurveyDBService) CreateSurveyTemplate(template *surveyTypes.SurveyTemplate) (*surveyTypes.SurveyTemplate, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	template.CreatedAt = time.Now()
	template.UpdatedAt = template.CreatedAt
	res, err := dbService.collectionSurveyTemplates().InsertOne(ctx, template)
	if err != nil {
		return nil, err
	}
	template.ID = res.InsertedID.(primitive.ObjectID)
	return template, nil
}

// find template by its (globally unique) name
func (dbService *SurveyDBService) GetSurveyTemplateByName(name string) (*surveyTypes.SurveyTemplate, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	var template surveyTypes.SurveyTemplate
	err := dbService.collectionSurveyTemplates().FindOne(ctx, bson.M{"name": name}).Decode(&template)
	if err != nil {
		return nil, err
	}
	return &template, nil
}

func (dbService *SurveyDBService) GetSurveyTemplateByTemplateID(templateID string) (*surveyTypes.SurveyTemplate, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	var template surveyTypes.SurveyTemplate
	err := dbService.collectionSurveyTemplates().FindOne(ctx, bson.M{"templateId": templateID}).Decode(&template)
	if err != nil {
		return nil, err
	}
	return &template, nil
}

// AddAgentsToSurveyTemplate adds the agent ids to the assigned set of the
// template owned by adminID. $addToSet keeps the operation idempotent:
// re-assigning an already assigned agent is a no-op.
func (dbService *SurveyDBService) AddAgentsToSurveyTemplate(templateID string, adminID string, agentIDs []string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{
		"templateId": templateID,
		"adminId":    adminID,
	}
	update := bson.M{
		"$addToSet": bson.M{"assignedAgents": bson.M{"$each": agentIDs}},
		"$set":      bson.M{"updatedAt": time.Now()},
	}
	res, err := dbService.collectionSurveyTemplates().UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrTemplateNotOwned
	}
	return nil
}

// templates where the agent appears in the assigned set
func (dbService *SurveyDBService) GetSurveyTemplatesAssignedToAgent(agentID string) (templates []surveyTypes.SurveyTemplate, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	cursor, err := dbService.collectionSurveyTemplates().Find(ctx, bson.M{"assignedAgents": agentID})
	if err != nil {
		return templates, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &templates)
	return templates, err
}

func (dbService *SurveyDBService) GetSurveyTemplatesByAdminID(adminID string) (templates []surveyTypes.SurveyTemplate, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	cursor, err := dbService.collectionSurveyTemplates().Find(ctx, bson.M{"adminId": adminID})
	if err != nil {
		return templates, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &templates)
	return templates, err
}
