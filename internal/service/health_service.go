package service

import (
	"context"

	"notes-app-be/internal/dto"
	"notes-app-be/internal/repository/unitofwork"

	"gorm.io/gorm"
)

type IHealthService interface {
	Check(ctx context.Context) (*dto.HealthResponse, error)
}

type healthService struct {
	db         *gorm.DB
	uowFactory unitofwork.RepositoryFactory
}

func NewHealthService(db *gorm.DB, uowFactory unitofwork.RepositoryFactory) IHealthService {
	return &healthService{db: db, uowFactory: uowFactory}
}

// Check pings the database and counts stored notes, which also proves the notes table is readable.
func (s *healthService) Check(ctx context.Context) (*dto.HealthResponse, error) {
	sqlDB, err := s.db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, err
	}

	count, err := s.uowFactory.NewUnitOfWork(ctx).NoteRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.HealthResponse{Status: "ok", Notes: count}, nil
}
