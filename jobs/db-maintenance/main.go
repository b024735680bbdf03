package main

import (
	"encoding/json"
	"log/slog"
	"os"
)

func main() {
	dropIndexes()

	createIndexes()

	getIndexes()
}

func dropIndexes() {
	switch conf.TaskConfigs.DropIndexes.UserDB {
	case DropIndexesModeAll:
		userDBService.DropIndexesForUsersCollection(true)
	case DropIndexesModeDefaults:
		userDBService.DropIndexesForUsersCollection(false)
	}

	switch conf.TaskConfigs.DropIndexes.SurveyDB {
	case DropIndexesModeAll:
		surveyDBService.DropIndexesForSurveyTemplatesCollection(true)
		surveyDBService.DropIndexesForSubmissionsCollection(true)
		surveyDBService.DropIndexesForDayReportsCollection(true)
	case DropIndexesModeDefaults:
		surveyDBService.DropIndexesForSurveyTemplatesCollection(false)
		surveyDBService.DropIndexesForSubmissionsCollection(false)
		surveyDBService.DropIndexesForDayReportsCollection(false)
	}
}

func createIndexes() {
	if conf.TaskConfigs.CreateIndexes.UserDB {
		if err := userDBService.CreateIndexesForUsersCollection(); err != nil {
			slog.Error("Error creating indexes for user DB", slog.String("error", err.Error()))
		}
	}

	if conf.TaskConfigs.CreateIndexes.SurveyDB {
		if err := surveyDBService.CreateIndexesForSurveyTemplatesCollection(); err != nil {
			slog.Error("Error creating indexes for surveyTemplates", slog.String("error", err.Error()))
		}
		if err := surveyDBService.CreateIndexesForSubmissionsCollection(); err != nil {
			slog.Error("Error creating indexes for surveySubmissions", slog.String("error", err.Error()))
		}
		if err := surveyDBService.CreateIndexesForDayReportsCollection(); err != nil {
			slog.Error("Error creating indexes for dayReports", slog.String("error", err.Error()))
		}
	}
}

func getIndexes() {
	if target := conf.TaskConfigs.GetIndexes.UserDB; target != "" {
		indexes, err := userDBService.ListIndexes()
		if err != nil {
			slog.Error("Error listing indexes for user DB", slog.String("error", err.Error()))
		} else {
			writeIndexesToFile(target, indexes)
		}
	}

	if target := conf.TaskConfigs.GetIndexes.SurveyDB; target != "" {
		indexes, err := surveyDBService.ListIndexes()
		if err != nil {
			slog.Error("Error listing indexes for survey DB", slog.String("error", err.Error()))
		} else {
			writeIndexesToFile(target, indexes)
		}
	}
}

func writeIndexesToFile(filename string, indexes interface{}) {
	content, err := json.MarshalIndent(indexes, "", "  ")
	if err != nil {
		slog.Error("Error serializing index infos", slog.String("error", err.Error()))
		return
	}
	if err := os.WriteFile(filename, content, 0644); err != nil {
		slog.Error("Error writing index infos", slog.String("file", filename), slog.String("error", err.Error()))
		return
	}
	slog.Info("Index infos written", slog.String("file", filename))
}
