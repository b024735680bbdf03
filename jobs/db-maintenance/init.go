package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Furquan712/geo-survey/pkg/db"
	"github.com/Furquan712/geo-survey/pkg/utils"
	"gopkg.in/yaml.v2"

	surveyDB "github.com/Furquan712/geo-survey/pkg/db/survey"
	userDB "github.com/Furquan712/geo-survey/pkg/db/user"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	// Variables to override "secrets" in the config file
	ENV_USER_DB_USERNAME   = "USER_DB_USERNAME"
	ENV_USER_DB_PASSWORD   = "USER_DB_PASSWORD"
	ENV_SURVEY_DB_USERNAME = "SURVEY_DB_USERNAME"
	ENV_SURVEY_DB_PASSWORD = "SURVEY_DB_PASSWORD"
)

type config struct {
	// Logging configs
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	// DB configs
	DBConfigs struct {
		UserDB   db.DBConfigYaml `json:"user_db" yaml:"user_db"`
		SurveyDB db.DBConfigYaml `json:"survey_db" yaml:"survey_db"`
	} `json:"db_configs" yaml:"db_configs"`

	// Task configurations
	TaskConfigs TaskConfigs `json:"task_configs" yaml:"task_configs"`
}

// Explicit task configuration structs
type TaskConfigs struct {
	DropIndexes   DropIndexesConfig   `json:"drop_indexes" yaml:"drop_indexes"`
	CreateIndexes CreateIndexesConfig `json:"create_indexes" yaml:"create_indexes"`
	GetIndexes    GetIndexesConfig    `json:"get_indexes" yaml:"get_indexes"`
}

type DropIndexesConfig struct {
	UserDB   DropIndexesMode `json:"user_db" yaml:"user_db"`
	SurveyDB DropIndexesMode `json:"survey_db" yaml:"survey_db"`
}

type CreateIndexesConfig struct {
	UserDB   bool `json:"user_db" yaml:"user_db"`
	SurveyDB bool `json:"survey_db" yaml:"survey_db"`
}

// GetIndexesConfig values are output file paths, empty means skip.
type GetIndexesConfig struct {
	UserDB   string `json:"user_db" yaml:"user_db"`
	SurveyDB string `json:"survey_db" yaml:"survey_db"`
}

type DropIndexesMode string

const (
	DropIndexesModeAll      DropIndexesMode = "all"
	DropIndexesModeDefaults DropIndexesMode = "defaults"
	DropIndexesModeNone     DropIndexesMode = "none"
)

func (mode DropIndexesMode) IsValid() bool {
	switch mode {
	case DropIndexesModeAll, DropIndexesModeDefaults, DropIndexesModeNone:
		return true
	default:
		return false
	}
}

func validateConfig() {
	validateDropIndexesMode("task_configs.drop_indexes.user_db", conf.TaskConfigs.DropIndexes.UserDB)
	validateDropIndexesMode("task_configs.drop_indexes.survey_db", conf.TaskConfigs.DropIndexes.SurveyDB)
}

func validateDropIndexesMode(field string, mode DropIndexesMode) {
	if !mode.IsValid() {
		panic(fmt.Sprintf("invalid drop indexes mode for %s: %q. Use one of: %v", field, mode, []DropIndexesMode{DropIndexesModeAll, DropIndexesModeDefaults, DropIndexesModeNone}))
	}
}

type RequiredDBs struct {
	UserDB   bool
	SurveyDB bool
}

var conf config

// Database service variables - initialized only for required databases based on task config
var (
	userDBService   *userDB.UserDBService
	surveyDBService *surveyDB.SurveyDBService
)

func init() {
	// Read config from file
	yamlFile, err := os.ReadFile(os.Getenv(ENV_CONFIG_FILE_PATH))
	if err != nil {
		panic(err)
	}

	err = yaml.UnmarshalStrict(yamlFile, &conf)
	if err != nil {
		panic(err)
	}

	validateConfig()

	// Init logger:
	utils.InitLogger(
		conf.Logging.LogLevel,
		conf.Logging.IncludeSrc,
		conf.Logging.LogToFile,
		conf.Logging.Filename,
		conf.Logging.MaxSize,
		conf.Logging.MaxAge,
		conf.Logging.MaxBackups,
		conf.Logging.CompressOldLogs,
	)

	// Override secrets from environment variables
	secretsOverride()

	// init db
	initDBs()
}

func secretsOverride() {
	if dbUsername := os.Getenv(ENV_USER_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.UserDB.Username = dbUsername
	}

	if dbPassword := os.Getenv(ENV_USER_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.UserDB.Password = dbPassword
	}

	if dbUsername := os.Getenv(ENV_SURVEY_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.SurveyDB.Username = dbUsername
	}

	if dbPassword := os.Getenv(ENV_SURVEY_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.SurveyDB.Password = dbPassword
	}
}

// getRequiredDBs determines which databases need to be connected based on task configurations
func getRequiredDBs() RequiredDBs {
	requiredDBs := RequiredDBs{}

	dropIndexes := conf.TaskConfigs.DropIndexes
	createIndexes := conf.TaskConfigs.CreateIndexes
	getIndexes := conf.TaskConfigs.GetIndexes

	if dropIndexes.UserDB != DropIndexesModeNone || createIndexes.UserDB || getIndexes.UserDB != "" {
		requiredDBs.UserDB = true
	}
	if dropIndexes.SurveyDB != DropIndexesModeNone || createIndexes.SurveyDB || getIndexes.SurveyDB != "" {
		requiredDBs.SurveyDB = true
	}

	return requiredDBs
}

func initDBs() {
	// Get required databases based on task configurations
	requiredDBs := getRequiredDBs()

	var err error

	if requiredDBs.UserDB {
		userDBService, err = userDB.NewUserDBService(db.DBConfigFromYamlObj(conf.DBConfigs.UserDB))
		if err != nil {
			slog.Error("Error connecting to User DB", slog.String("error", err.Error()))
			panic(err)
		}
	}

	if requiredDBs.SurveyDB {
		surveyDBService, err = surveyDB.NewSurveyDBService(db.DBConfigFromYamlObj(conf.DBConfigs.SurveyDB))
		if err != nil {
			slog.Error("Error connecting to Survey DB", slog.String("error", err.Error()))
			panic(err)
		}
	}

	slog.Info("Database connections established",
		slog.Bool("user_db", requiredDBs.UserDB),
		slog.Bool("survey_db", requiredDBs.SurveyDB))
}
