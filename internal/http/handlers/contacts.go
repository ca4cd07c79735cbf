package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hongminglow/contacts-be/internal/http/respond"
	"github.com/hongminglow/contacts-be/internal/middleware"
	"github.com/hongminglow/contacts-be/internal/models"
	"github.com/hongminglow/contacts-be/internal/models/dto"
	"github.com/hongminglow/contacts-be/internal/storage"
)

const (
	defaultListSkip  = 0
	defaultListLimit = 10
)

// ContactsHandler owns the ownership-scoped contact endpoints. Every
// operation resolves the owner from the request context placed there by the
// bearer middleware; a contact belonging to another user is reported as not
// found, never as forbidden.
type ContactsHandler struct {
	store storage.ContactStore

	// now is swapped in tests to pin the birthday window.
	now func() time.Time
}

// NewContactsHandler constructs the handler.
func NewContactsHandler(store storage.ContactStore) *ContactsHandler {
	return &ContactsHandler{store: store, now: time.Now}
}

// Register attaches contact routes to the router. All routes assume the
// bearer middleware already ran.
func (h *ContactsHandler) Register(r chi.Router) {
	r.Get("/contacts", h.handleList)
	r.Post("/contacts", h.handleCreate)
	r.Get("/contacts/{id}", h.handleGet)
	r.Put("/contacts/update/{id}", h.handleUpdate)
	r.Delete("/contacts/del/{id}", h.handleDelete)
	r.Get("/contacts/search/name/{name}", h.handleSearchByName)
	r.Get("/contacts/search/surname/{surname}", h.handleSearchBySurname)
	r.Get("/contacts/search/email/{email}", h.handleSearchByEmail)
	r.Get("/birthdays", h.handleBirthdays)
}

func (h *ContactsHandler) handleList(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	skip, err := queryInt(r, "skip", defaultListSkip)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "skip must be a non-negative integer")
		return
	}
	limit, err := queryInt(r, "limit", defaultListLimit)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "limit must be a non-negative integer")
		return
	}

	contacts, err := h.store.ListContacts(r.Context(), user.ID, skip, limit)
	if err != nil {
		log.Printf("list contacts for user %d: %v", user.ID, err)
		respond.Error(w, http.StatusInternalServerError, "failed to list contacts")
		return
	}
	respond.JSON(w, http.StatusOK, "contacts", emptyIfNil(contacts))
}

func (h *ContactsHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid contact id")
		return
	}

	contact, err := h.store.GetContact(r.Context(), id, user.ID)
	if err != nil {
		h.respondStoreError(w, err, "fetch contact", user.ID)
		return
	}
	respond.JSON(w, http.StatusOK, "contact", contact)
}

func (h *ContactsHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	input, birthday, ok := decodeContactInput(w, r)
	if !ok {
		return
	}

	created, err := h.store.CreateContact(r.Context(), storage.NewContact{
		Name:     input.Name,
		Surname:  input.Surname,
		Email:    input.Email,
		Phone:    input.Phone,
		Birthday: birthday,
	}, user.ID)
	if err != nil {
		h.respondStoreError(w, err, "create contact", user.ID)
		return
	}
	respond.JSON(w, http.StatusCreated, "contact created", created)
}

func (h *ContactsHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid contact id")
		return
	}

	input, birthday, ok := decodeContactInput(w, r)
	if !ok {
		return
	}

	updated, err := h.store.UpdateContact(r.Context(), id, storage.NewContact{
		Name:     input.Name,
		Surname:  input.Surname,
		Email:    input.Email,
		Phone:    input.Phone,
		Birthday: birthday,
	}, user.ID)
	if err != nil {
		h.respondStoreError(w, err, "update contact", user.ID)
		return
	}
	respond.JSON(w, http.StatusOK, "contact updated", updated)
}

func (h *ContactsHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid contact id")
		return
	}

	deleted, err := h.store.DeleteContact(r.Context(), id, user.ID)
	if err != nil {
		h.respondStoreError(w, err, "delete contact", user.ID)
		return
	}
	respond.JSON(w, http.StatusOK, "contact deleted", deleted)
}

func (h *ContactsHandler) handleSearchByName(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	contacts, err := h.store.FindContactsByName(r.Context(), chi.URLParam(r, "name"), user.ID)
	if err != nil {
		h.respondStoreError(w, err, "search contacts by name", user.ID)
		return
	}
	respond.JSON(w, http.StatusOK, "contacts", emptyIfNil(contacts))
}

func (h *ContactsHandler) handleSearchBySurname(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	contacts, err := h.store.FindContactsBySurname(r.Context(), chi.URLParam(r, "surname"), user.ID)
	if err != nil {
		h.respondStoreError(w, err, "search contacts by surname", user.ID)
		return
	}
	respond.JSON(w, http.StatusOK, "contacts", emptyIfNil(contacts))
}

func (h *ContactsHandler) handleSearchByEmail(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	contact, err := h.store.FindContactByEmail(r.Context(), chi.URLParam(r, "email"), user.ID)
	if err != nil {
		h.respondStoreError(w, err, "search contact by email", user.ID)
		return
	}
	respond.JSON(w, http.StatusOK, "contact", contact)
}

func (h *ContactsHandler) handleBirthdays(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	contacts, err := h.store.UpcomingBirthdays(r.Context(), user.ID, h.now())
	if err != nil {
		h.respondStoreError(w, err, "fetch upcoming birthdays", user.ID)
		return
	}
	respond.JSON(w, http.StatusOK, "upcoming birthdays", emptyIfNil(contacts))
}

func (h *ContactsHandler) respondStoreError(w http.ResponseWriter, err error, action string, userID int64) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		respond.Error(w, http.StatusNotFound, "contact not found")
	case errors.Is(err, storage.ErrAlreadyExists):
		respond.Error(w, http.StatusConflict, "contact email or phone already in use")
	default:
		log.Printf("%s for user %d: %v", action, userID, err)
		respond.Error(w, http.StatusInternalServerError, "storage operation failed")
	}
}

// decodeContactInput decodes and validates the request body, writing the
// error response itself on failure.
func decodeContactInput(w http.ResponseWriter, r *http.Request) (dto.ContactInput, time.Time, bool) {
	var input dto.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return dto.ContactInput{}, time.Time{}, false
	}
	birthday, err := input.Validate()
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return dto.ContactInput{}, time.Time{}, false
	}
	return input, birthday, true
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, errors.New("invalid integer")
	}
	return value, nil
}

// emptyIfNil keeps list payloads serializing as [] instead of null.
func emptyIfNil(contacts []models.Contact) []models.Contact {
	if contacts == nil {
		return []models.Contact{}
	}
	return contacts
}
