package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventbook/internal/domain"
)

func createEventBody(t *testing.T) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(CreateEventRequest{
		Title:       "Tech Conference 2025",
		Description: "An amazing tech conference",
		Overview:    "Join us for cutting-edge tech talks",
		Image:       "https://example.com/image.jpg",
		Venue:       "Convention Center",
		Location:    "San Francisco, CA",
		Date:        "2025-12-15",
		Time:        "09:00",
		Mode:        "hybrid",
		Audience:    "Developers",
		Agenda:      []string{"Keynote"},
		Organizer:   "Tech Events Inc.",
		Tags:        []string{"technology"},
	})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestEventController_CreateEvent(t *testing.T) {
	t.Run("success returns 201 with event envelope", func(t *testing.T) {
		svc := &fakeEventService{}
		ctrl := NewEventController(testLogger, svc)

		req := httptest.NewRequest(http.MethodPost, "/api/events", createEventBody(t))
		rec := httptest.NewRecorder()
		ctrl.CreateEvent(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp EventResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Event created successfully", resp.Message)
		require.NotNil(t, resp.Event)
		assert.Equal(t, "ev-1", resp.Event.ID)
		assert.Equal(t, "Tech Conference 2025", svc.lastCreated.Title)
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		ctrl := NewEventController(testLogger, &fakeEventService{})

		req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewBufferString("{not json"))
		rec := httptest.NewRecorder()
		ctrl.CreateEvent(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validation error returns 400 with detail", func(t *testing.T) {
		svc := &fakeEventService{
			createEventErr: domain.NewFieldError("time", domain.ErrInvalidFormat),
		}
		ctrl := NewEventController(testLogger, svc)

		req := httptest.NewRequest(http.MethodPost, "/api/events", createEventBody(t))
		rec := httptest.NewRecorder()
		ctrl.CreateEvent(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var resp struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Validation failed", resp.Message)
		assert.Contains(t, resp.Error, "time")
	})

	t.Run("duplicate slug returns 409", func(t *testing.T) {
		svc := &fakeEventService{createEventErr: domain.ErrConflict}
		ctrl := NewEventController(testLogger, svc)

		req := httptest.NewRequest(http.MethodPost, "/api/events", createEventBody(t))
		rec := httptest.NewRecorder()
		ctrl.CreateEvent(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("service failure returns 500", func(t *testing.T) {
		svc := &fakeEventService{createEventErr: assert.AnError}
		ctrl := NewEventController(testLogger, svc)

		req := httptest.NewRequest(http.MethodPost, "/api/events", createEventBody(t))
		rec := httptest.NewRecorder()
		ctrl.CreateEvent(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestEventController_ListEvents(t *testing.T) {
	svc := &fakeEventService{listEventsResult: []*domain.Event{
		{ID: "ev-1", Slug: "one"},
		{ID: "ev-2", Slug: "two"},
	}}
	ctrl := NewEventController(testLogger, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	rec := httptest.NewRecorder()
	ctrl.ListEvents(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp EventListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Events fetched successfully", resp.Message)
	assert.Len(t, resp.Events, 2)
}

func TestEventController_GetEventBySlug(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEventService{getBySlugResult: &domain.Event{ID: "ev-1", Slug: "go-conf"}}
		ctrl := NewEventController(testLogger, svc)

		req := httptest.NewRequest(http.MethodGet, "/api/events/go-conf", nil)
		req.SetPathValue("slug", "go-conf")
		rec := httptest.NewRecorder()
		ctrl.GetEventBySlug(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "go-conf", svc.lastSlug)
	})

	t.Run("unknown slug returns 404", func(t *testing.T) {
		svc := &fakeEventService{getBySlugErr: domain.ErrNotFound}
		ctrl := NewEventController(testLogger, svc)

		req := httptest.NewRequest(http.MethodGet, "/api/events/nope", nil)
		req.SetPathValue("slug", "nope")
		rec := httptest.NewRecorder()
		ctrl.GetEventBySlug(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestEventController_UpdateEvent(t *testing.T) {
	t.Run("success passes through partial update", func(t *testing.T) {
		svc := &fakeEventService{updateResult: &domain.Event{ID: "ev-1", Slug: "renamed"}}
		ctrl := NewEventController(testLogger, svc)

		body := bytes.NewBufferString(`{"title":"Renamed"}`)
		req := httptest.NewRequest(http.MethodPut, "/api/events/ev-1", body)
		req.SetPathValue("eventID", "ev-1")
		rec := httptest.NewRecorder()
		ctrl.UpdateEvent(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ev-1", svc.lastUpdateID)
		require.NotNil(t, svc.lastUpdate.Title)
		assert.Equal(t, "Renamed", *svc.lastUpdate.Title)
		assert.Nil(t, svc.lastUpdate.Venue)
	})

	t.Run("unknown event returns 404", func(t *testing.T) {
		svc := &fakeEventService{updateEventErr: domain.ErrNotFound}
		ctrl := NewEventController(testLogger, svc)

		req := httptest.NewRequest(http.MethodPut, "/api/events/ev-x", bytes.NewBufferString(`{}`))
		req.SetPathValue("eventID", "ev-x")
		rec := httptest.NewRecorder()
		ctrl.UpdateEvent(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestEventController_DeleteEvent(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEventService{}
		ctrl := NewEventController(testLogger, svc)

		req := httptest.NewRequest(http.MethodDelete, "/api/events/ev-1", nil)
		req.SetPathValue("eventID", "ev-1")
		rec := httptest.NewRecorder()
		ctrl.DeleteEvent(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ev-1", svc.lastDeleteID)
	})

	t.Run("unknown event returns 404", func(t *testing.T) {
		svc := &fakeEventService{deleteEventErr: domain.ErrNotFound}
		ctrl := NewEventController(testLogger, svc)

		req := httptest.NewRequest(http.MethodDelete, "/api/events/ev-x", nil)
		req.SetPathValue("eventID", "ev-x")
		rec := httptest.NewRecorder()
		ctrl.DeleteEvent(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
