package handlers

import (
	"context"

	"github.com/google/uuid"

	"genderdecoder/internal/models"
)

// JobAdStore persists analysed job ads.
type JobAdStore interface {
	CreateJobAd(ctx context.Context, ad *models.JobAd) error
	GetJobAdByID(ctx context.Context, id uuid.UUID) (*models.JobAd, error)
}

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
