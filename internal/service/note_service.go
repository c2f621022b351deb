package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"notes-app-be/internal/dto"
	"notes-app-be/internal/entity"
	"notes-app-be/internal/mapper"
	"notes-app-be/internal/pkg/logger"
	"notes-app-be/internal/repository/contract"
	"notes-app-be/internal/repository/specification"
	"notes-app-be/internal/repository/unitofwork"
	"notes-app-be/pkg/events"
)

const noteModule = "NOTE_SERVICE"

var (
	ErrNoteNotFound = contract.ErrNoteNotFound
	ErrInvalidNote  = errors.New("title and content are required")
)

type INoteService interface {
	List(ctx context.Context) ([]dto.NoteResponse, error)
	Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, id int64) error
}

type noteService struct {
	uowFactory       unitofwork.RepositoryFactory
	listCache        contract.NoteListCache
	publisherService IPublisherService
	logger           logger.ILogger
	mapper           *mapper.NoteMapper

	// cacheMu and cacheGen stop a listing that raced with a mutation from
	// repopulating the cache with rows read before that mutation.
	cacheMu  sync.Mutex
	cacheGen uint64
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	listCache contract.NoteListCache,
	publisherService IPublisherService,
	log logger.ILogger,
) INoteService {
	return &noteService{
		uowFactory:       uowFactory,
		listCache:        listCache,
		publisherService: publisherService,
		logger:           log,
		mapper:           mapper.NewNoteMapper(),
	}
}

func (c *noteService) List(ctx context.Context) ([]dto.NoteResponse, error) {
	if cached, found, err := c.listCache.Get(ctx); err != nil {
		c.logger.Warn(noteModule, "note list cache read failed", map[string]interface{}{"error": err.Error()})
	} else if found {
		return c.mapper.ToResponses(cached), nil
	}

	c.cacheMu.Lock()
	gen := c.cacheGen
	c.cacheMu.Unlock()

	uow := c.uowFactory.NewUnitOfWork(ctx)
	notes, err := uow.NoteRepository().FindAll(ctx, specification.OrderBy{Field: "id"})
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	c.cacheMu.Lock()
	if gen == c.cacheGen {
		if err := c.listCache.Set(ctx, notes); err != nil {
			c.logger.Warn(noteModule, "note list cache write failed", map[string]interface{}{"error": err.Error()})
		}
	}
	c.cacheMu.Unlock()

	return c.mapper.ToResponses(notes), nil
}

func (c *noteService) Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		return nil, ErrInvalidNote
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	note := entity.Note{
		Title:   req.Title,
		Content: req.Content,
	}

	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}

	c.invalidateList(ctx)
	c.publish(ctx, events.New(events.NoteCreated, map[string]interface{}{
		"note_id": note.Id,
		"title":   note.Title,
	}))

	res := c.mapper.ToResponse(&note)
	return &res, nil
}

func (c *noteService) Delete(ctx context.Context, id int64) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("delete note %d: %w", id, err)
	}
	defer uow.Rollback()

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return fmt.Errorf("delete note %d: %w", id, err)
	}
	if note == nil {
		return ErrNoteNotFound
	}

	if err := uow.NoteRepository().Delete(ctx, id); err != nil {
		if errors.Is(err, contract.ErrNoteNotFound) {
			return ErrNoteNotFound
		}
		return fmt.Errorf("delete note %d: %w", id, err)
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("delete note %d: %w", id, err)
	}

	c.invalidateList(ctx)
	c.publish(ctx, events.New(events.NoteDeleted, map[string]interface{}{
		"note_id": id,
		"title":   note.Title,
	}))

	return nil
}

func (c *noteService) invalidateList(ctx context.Context) {
	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()

	c.cacheGen++
	if err := c.listCache.Invalidate(ctx); err != nil {
		c.logger.Error(noteModule, "note list cache invalidation failed", map[string]interface{}{"error": err})
	}
}

// publish is auxiliary; failures are logged, never returned.
func (c *noteService) publish(ctx context.Context, evt events.Event) {
	if c.publisherService == nil {
		return
	}
	if err := c.publisherService.Publish(ctx, evt); err != nil {
		c.logger.Warn(noteModule, "failed to publish note event", map[string]interface{}{
			"error": err.Error(),
			"type":  evt.EventType(),
		})
	}
}
