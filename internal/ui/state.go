// Package ui holds the client-side state of the notes UI and the actions
// that drive it. Renderers (the terminal UI) only read State snapshots and
// call the Controller; they keep no note data of their own.
package ui

import (
	"context"
	"errors"
	"strings"
	"sync"

	"notes-app-be/pkg/notesclient"
)

const (
	MsgRequired     = "Title and content are required"
	MsgLoadFailed   = "Failed to load notes. Please try again."
	MsgAddFailed    = "Failed to add note. Please try again."
	MsgDeleteFailed = "Failed to delete note. Please try again."
)

var (
	// ErrBusy is returned when an action is attempted while another is in flight.
	ErrBusy = errors.New("another request is in flight")
	// ErrRequired is returned by Add when title or content is blank.
	ErrRequired = errors.New(MsgRequired)
)

type Note = notesclient.Note

// NotesAPI is the subset of the HTTP API the UI needs; *notesclient.Client implements it.
type NotesAPI interface {
	List(ctx context.Context) ([]Note, error)
	Create(ctx context.Context, title, content string) (*Note, error)
	Delete(ctx context.Context, id int64) error
}

type State struct {
	Notes   []Note
	Title   string
	Content string
	Busy    bool
	Error   string
}

// CanMutate reports whether add/delete controls should be enabled.
func (s State) CanMutate() bool {
	return !s.Busy
}

type Controller struct {
	api NotesAPI

	mu    sync.Mutex
	state State
}

func NewController(api NotesAPI) *Controller {
	return &Controller{api: api}
}

// State returns a snapshot safe to read while requests are in flight.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.state
	s.Notes = append([]Note(nil), c.state.Notes...)
	return s
}

func (c *Controller) SetTitle(title string) {
	c.mu.Lock()
	c.state.Title = title
	c.mu.Unlock()
}

func (c *Controller) SetContent(content string) {
	c.mu.Lock()
	c.state.Content = content
	c.mu.Unlock()
}

func (c *Controller) begin() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Busy {
		return ErrBusy
	}
	c.state.Busy = true
	return nil
}

func (c *Controller) end() {
	c.mu.Lock()
	c.state.Busy = false
	c.mu.Unlock()
}

func (c *Controller) setError(msg string) {
	c.mu.Lock()
	c.state.Error = msg
	c.mu.Unlock()
}

// Load replaces the note list with a fresh copy from the server. On failure
// the previous list stays in place.
func (c *Controller) Load(ctx context.Context) error {
	if err := c.begin(); err != nil {
		return err
	}
	defer c.end()

	return c.fetch(ctx)
}

func (c *Controller) fetch(ctx context.Context) error {
	notes, err := c.api.List(ctx)
	if err != nil {
		c.setError(MsgLoadFailed)
		return err
	}

	c.mu.Lock()
	c.state.Notes = notes
	c.state.Error = ""
	c.mu.Unlock()
	return nil
}

// Add creates a note from the current inputs and re-fetches the list.
// Blank inputs never reach the server.
func (c *Controller) Add(ctx context.Context) error {
	c.mu.Lock()
	if c.state.Busy {
		c.mu.Unlock()
		return ErrBusy
	}
	title, content := c.state.Title, c.state.Content
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		c.state.Error = MsgRequired
		c.mu.Unlock()
		return ErrRequired
	}
	c.state.Busy = true
	c.mu.Unlock()
	defer c.end()

	if _, err := c.api.Create(ctx, title, content); err != nil {
		c.setError(MsgAddFailed)
		return err
	}

	c.mu.Lock()
	c.state.Title = ""
	c.state.Content = ""
	c.state.Error = ""
	c.mu.Unlock()

	return c.fetch(ctx)
}

// Delete removes a note and re-fetches the list. The displayed list is not
// touched until the re-fetch succeeds.
func (c *Controller) Delete(ctx context.Context, id int64) error {
	if err := c.begin(); err != nil {
		return err
	}
	defer c.end()

	if err := c.api.Delete(ctx, id); err != nil {
		c.setError(MsgDeleteFailed)
		return err
	}

	return c.fetch(ctx)
}
