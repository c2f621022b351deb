package controller

import (
	"errors"
	"strconv"

	"notes-app-be/internal/dto"
	"notes-app-be/internal/pkg/logger"
	"notes-app-be/internal/pkg/serverutils"
	"notes-app-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

const noteControllerModule = "NOTE_CONTROLLER"

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
	logger      logger.ILogger
}

func NewNoteController(noteService service.INoteService, log logger.ILogger) INoteController {
	return &noteController{
		noteService: noteService,
		logger:      log,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notes")
	h.Get("", c.List)
	h.Post("", c.Create)
	// optional so an empty id reaches Delete and is rejected as invalid
	h.Delete(":id?", c.Delete)
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	res, err := c.noteService.List(ctx.UserContext())
	if err != nil {
		return c.storeFault(ctx, "Failed to fetch notes", err)
	}

	return ctx.JSON(res)
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, serverutils.MsgInvalidBody)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Create(ctx.UserContext(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidNote) {
			return fiber.NewError(fiber.StatusBadRequest, serverutils.MsgRequiredFields)
		}
		return c.storeFault(ctx, "Failed to create note", err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	if err := c.noteService.Delete(ctx.UserContext(), id); err != nil {
		if errors.Is(err, service.ErrNoteNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Note not found")
		}
		return c.storeFault(ctx, "Failed to delete note", err)
	}

	return ctx.JSON(serverutils.MessageResponse("Note deleted"))
}

// storeFault logs the underlying error and hides it behind a generic 500.
func (c *noteController) storeFault(ctx *fiber.Ctx, message string, err error) error {
	c.logger.Error(noteControllerModule, message, map[string]interface{}{
		"error":  err,
		"method": ctx.Method(),
		"path":   ctx.Path(),
	})
	return fiber.NewError(fiber.StatusInternalServerError, message)
}
