package game

import "github.com/KirkDiggler/werewolf/internal/models"

type SaveRecordInput struct {
	Record *models.GameRecord
}

type GetRecordInput struct {
	RecordID string
}

type ListRecordsInput struct {
	GuildID string

	// Limit caps the number of records returned; zero means DefaultListLimit
	Limit int
}

type ListRecordsOutput struct {
	Records []*models.GameRecord
}

type DeleteRecordInput struct {
	RecordID string
}
