package user

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
	COLLECTION_NAME_USERS = "users"
)

type UserDBService struct {
	DBClient        *mongo.Client
	timeout         int
	noCursorTimeout bool
	DBNamePrefix    string
}

func NewUserDBService(configs db.DBConfig) (*UserDBService, error) {
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

	userDBSc := &UserDBService{
		DBClient:        dbClient,
		timeout:         configs.Timeout,
		noCursorTimeout: configs.NoCursorTimeout,
		DBNamePrefix:    configs.DBNamePrefix,
	}

	if configs.RunIndexCreation {
		if err := userDBSc.ensureIndexes(); err != nil {
			slog.Error("Error ensuring indexes for user DB", slog.String("error", err.Error()))
		}
	}

	return userDBSc, nil
}

func (dbService *UserDBService) getDBName() string {
	return dbService.DBNamePrefix + "geosurvey_userDB"
}

func (dbService *UserDBService) collectionUsers() *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName()).Collection(COLLECTION_NAME_USERS)
}

func (dbService *UserDBService) getContext() (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(dbService.timeout)*time.Second)
}

func (dbService *UserDBService) ensureIndexes() error {
	slog.Debug("Ensuring indexes for user DB")
	return dbService.CreateIndexesForUsersCollection()
}

// ListIndexes collects the current index definitions per collection.
func (dbService *UserDBService) ListIndexes() (map[string][]bson.M, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	indexes, err := db.ListCollectionIndexes(ctx, dbService.collectionUsers())
	if err != nil {
		return nil, err
	}
	return map[string][]bson.M{
		COLLECTION_NAME_USERS: indexes,
	}, nil
}
