package user

import (
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	userTypes "github.com/Furquan712/geo-survey/pkg/user-management/types"
)

var indexesForUsersCollection = []mongo.IndexModel{
	{
		Keys: bson.D{
			{Key: "email", Value: 1},
		},
		Options: options.Index().SetName("email_1").SetUnique(true),
	},
	{
		Keys: bson.D{
			{Key: "role", Value: 1},
			{Key: "adminId", Value: 1},
		},
		Options: options.Index().SetName("role_adminId_1"),
	},
}

func (dbService *UserDBService) CreateIndexesForUsersCollection() error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionUsers().Indexes().CreateMany(ctx, indexesForUsersCollection)
	return err
}

func (dbService *UserDBService) DropIndexesForUsersCollection(dropAll bool) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	if dropAll {
		_, err := dbService.collectionUsers().Indexes().DropAll(ctx)
		if err != nil {
			slog.Error("Error dropping all indexes for users", slog.String("error", err.Error()))
		}
		return
	}
	for _, index := range indexesForUsersCollection {
		indexName := *index.Options.Name
		_, err := dbService.collectionUsers().Indexes().DropOne(ctx, indexName)
		if err != nil {
			slog.Error("Error dropping index for users", slog.String("error", err.Error()), slog.String("indexName", indexName))
		}
	}
}

func (dbService *UserDBService) CreateUser(newUser *userTypes.User) (*userTypes.User, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	newUser.CreatedAt = time.Now()
	newUser.UpdatedAt = newUser.CreatedAt
	res, err := dbService.collectionUsers().InsertOne(ctx, newUser)
	if err != nil {
		return nil, err
	}
	newUser.ID = res.InsertedID.(primitive.ObjectID)
	return newUser, nil
}

// find user by email
func (dbService *UserDBService) GetUserByEmail(email string) (*userTypes.User, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	var user userTypes.User
	err := dbService.collectionUsers().FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// find user by id
func (dbService *UserDBService) GetUserByID(id string) (*userTypes.User, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var user userTypes.User
	err = dbService.collectionUsers().FindOne(ctx, bson.M{"_id": objID}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// agents created by this admin
func (dbService *UserDBService) GetAgentsByAdminID(adminID string) (agents []userTypes.User, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{
		"role":    userTypes.USER_ROLE_AGENT,
		"adminId": adminID,
	}
	cursor, err := dbService.collectionUsers().Find(ctx, filter)
	if err != nil {
		return agents, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &agents)
	return agents, err
}

// GetUsersByIDs fetches user records for the given hex ids; unknown ids are
// skipped silently.
func (dbService *UserDBService) GetUsersByIDs(ids []string) (users []userTypes.User, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	objIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			slog.Warn("invalid user id", slog.String("id", id))
			continue
		}
		objIDs = append(objIDs, objID)
	}

	cursor, err := dbService.collectionUsers().Find(ctx, bson.M{"_id": bson.M{"$in": objIDs}})
	if err != nil {
		return users, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &users)
	return users, err
}

func (dbService *UserDBService) UpdateUserTimestamp(id string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = dbService.collectionUsers().UpdateOne(
		ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"updatedAt": time.Now()}},
	)
	return err
}
